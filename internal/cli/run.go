package cli

import (
	"github.com/spf13/cobra"
)

// runCmd chains fit and encode in one invocation, a convenience for callers
// that don't need to inspect the intermediate partition snapshot.
var runCmd = &cobra.Command{
	Use: "run",
	Short: "Fit the merge engine and encode the result in one step",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDataset == "" {
			return errDatasetRequired
		}
		best, err := runFit(cmd.Context(), flagDataset)
		if err != nil {
			return err
		}
		return runEncode(flagDataset, best)
	},
}

func init() {
	registerFitFlags(runCmd)
}
