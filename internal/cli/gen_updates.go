package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/poligras/datasets"
	"github.com/katalvlaran/poligras/internal/obsrand"
)

var (
	genUpdatesCount int
	genUpdatesSeed int64
	genUpdatesOut string
)

// updateRecord is one entry of a generated stream, using the alias spellings
// dynamic.ParseStream accepts.
type updateRecord struct {
	Op string `json:"op"`
	U  string `json:"u"`
	V  string `json:"v"`
}

// genUpdatesCmd synthesizes a random add/remove update stream against an
// existing dataset's graph, for exercising the dynamic update engine
// without hand-writing a stream file.
var genUpdatesCmd = &cobra.Command{
	Use: "gen-updates",
	Short: "Generate a random edge add/remove update stream for the dynamic update engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDataset == "" {
			return errDatasetRequired
		}
		return runGenUpdates(flagDataset, genUpdatesCount, genUpdatesSeed, genUpdatesOut)
	},
}

func init() {
	genUpdatesCmd.Flags().IntVar(&genUpdatesCount, "count", 10, "number of update records to generate")
	genUpdatesCmd.Flags().Int64Var(&genUpdatesSeed, "seed", 0, "seed for the sampling RNG")
	genUpdatesCmd.Flags().StringVar(&genUpdatesOut, "out", "", "output path (default: {dataset}/updates.json under the data root)")
}

func runGenUpdates(dataset string, count int, seed int64, out string) error {
	g, err := datasets.LoadGraph(graphPath(dataset))
	if err != nil {
		return err
	}
	if out == "" {
		if err := ensureDatasetDir(dataset); err != nil {
			return err
		}
		out = datasetDir(dataset) + "/updates.json"
	}

	var existing []datasets.WeightedEdge
	for _, e := range g.Edges {
		if e.Source != e.Target {
			existing = append(existing, e)
		}
	}

	rng := obsrand.New(seed)
	records := make([]updateRecord, 0, count)
	for i := 0; i < count; i++ {
		if len(existing) > 0 && rng.Float64() < 0.5 {
			idx := int(rng.Float64() * float64(len(existing)))
			if idx >= len(existing) {
				idx = len(existing) - 1
			}
			e := existing[idx]
			records = append(records, updateRecord{Op: "remove", U: e.Source, V: e.Target})
			continue
		}
		a, b := rng.IntPair(len(g.Nodes))
		records = append(records, updateRecord{Op: "add", U: g.Nodes[a], V: g.Nodes[b]})
	}

	data, err := json.MarshalIndent(records, "", " ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("cli: generated %d update records for dataset %q at %s", count, dataset, out)
	}
	return nil
}
