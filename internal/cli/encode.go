package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/poligras/datasets"
	"github.com/katalvlaran/poligras/engine"
	"github.com/katalvlaran/poligras/summary"
)

// encodeCmd runs the summary encoder against the persisted best-state
// partition and writes the full output artifact to `output.json`.
var encodeCmd = &cobra.Command{
	Use: "encode",
	Short: "Encode the fitted partition into the output.json artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDataset == "" {
			return errDatasetRequired
		}
		return runEncode(flagDataset, nil)
	},
}

// runEncode builds and writes output.json for dataset. If state is non-nil
// (runCmd chaining straight from fit), it is encoded directly; otherwise the
// persisted `{dataset}_graph_summary` snapshot is loaded from disk.
func runEncode(dataset string, state *engine.State) error {
	g, err := datasets.LoadGraph(graphPath(dataset))
	if err != nil {
		return err
	}

	var members map[string][]string
	var timeline []summary.TimelineEntry
	var params summary.Parameters

	if state != nil {
		members = state.Members
		timeline = state.Timeline
		params = summary.Parameters{
			Counts: fitCounts, GroupSize: fitGroupSize,
			Hidden1: fitHidden1, Hidden2: fitHidden2,
			LR: fitLR, Dropout: fitDropout,
		}
	} else {
		snap, err := loadSnapshot(snapshotPath(dataset))
		if err != nil {
			return err
		}
		members = snap.Members
		timeline = snap.Timeline
		params = snap.Parameters
	}

	meta := &summary.Meta{
		Dataset: dataset,
		Algorithm: "Poligras",
		RunID: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Parameters: params,
	}

	out := summary.Encode(g, members, meta, timeline)

	data, err := json.MarshalIndent(out, "", " ")
	if err != nil {
		return err
	}
	if err := ensureDatasetDir(dataset); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath(dataset), data, 0o644); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("cli: encode finished for dataset %q: %d supernodes, %d superedges", dataset, out.Stats.Summary.Supernodes, out.Stats.Summary.Superedges)
	}
	return nil
}
