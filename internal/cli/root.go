package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/poligras/internal/obslog"
)

var (
	flagConfigPath string
	flagDataset    string
	flagVerbose    bool

	cfg    *Config
	logger obslog.Logger
)

// rootCmd is the base command; its displayed name is the fixed string
// "poligras", and its PersistentPreRunE loads the config and builds the
// logger before every subcommand.
var rootCmd = &cobra.Command{
	Use: "poligras",
	Short: "Graph summarization: supernode merging, superedges, and correction sets",
	Long: `poligras compresses a large simple graph into a summary graph plus two
correction sets, with a lossless recipe for reconstructing the original.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := levelFromString(cfg.LogLevel)
		if flagVerbose {
			level = obslog.LevelDebug
		}
		logger = obslog.New(level, os.Stderr)
		return nil
	},
}

// Execute runs the command tree, exiting non-zero on any unhandled error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to poligras.yaml (default:./poligras.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "dataset name, resolved under the configured data root")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(applyUpdatesCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genUpdatesCmd)
}
