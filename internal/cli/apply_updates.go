package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/poligras/dynamic"
	"github.com/katalvlaran/poligras/summary"
)

var flagUpdatesFile string

// applyUpdatesCmd runs the dynamic update engine against the encoded
// output.json and writes the result to output_dynamic.json.
var applyUpdatesCmd = &cobra.Command{
	Use: "apply-updates",
	Short: "Apply a stream of edge add/remove events onto output.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDataset == "" {
			return errDatasetRequired
		}
		return runApplyUpdates(flagDataset, flagUpdatesFile)
	},
}

func init() {
	applyUpdatesCmd.Flags().StringVar(&flagUpdatesFile, "updates", "", "path to the update stream file (JSON array or {\"updates\":[...]})")
	_ = applyUpdatesCmd.MarkFlagRequired("updates")
}

func runApplyUpdates(dataset, updatesFile string) error {
	raw, err := os.ReadFile(outputPath(dataset))
	if err != nil {
		return err
	}
	var prev summary.Output
	if err := json.Unmarshal(raw, &prev); err != nil {
		return err
	}

	streamData, err := os.ReadFile(updatesFile)
	if err != nil {
		return err
	}
	updates, err := dynamic.ParseStream(streamData)
	if err != nil {
		return err
	}

	out, err := dynamic.Apply(&prev, prev.Graphs.Summary.Directed, updates, logger)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(out, "", " ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(dynamicOutputPath(dataset), data, 0o644); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("cli: applied %d updates for dataset %q", len(updates), dataset)
	}
	return nil
}
