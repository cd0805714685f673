package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cardquery/cardquery/internal/config"
	"github.com/cardquery/cardquery/internal/logging"
)

var (
	datasetFlag string
	outputFlag  string
	verbose     bool
	noColor     bool

	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardquery",
	Short: "Query a trading card dataset by field",
	Long: `cardquery loads a card document ({"data": [...]}) into memory and filters it
by any card field, either by text (substring or whole word, with optional case
sensitivity) or by number (=, !=, <, <=, >, >=).

Datasets are looked up in the dataset library (XDG_DATA_HOME/cardquery/datasets)
or used as a relative path. Without --dataset the default dataset from the
config file is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(verbose)
		if noColor {
			color.NoColor = true
			return
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Debug("config not applied", zap.Error(err))
			return
		}
		if cfg.NoColor {
			color.NoColor = true
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&datasetFlag, "dataset", "d", "", "Dataset name from your library or a path to a card document")
	RootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: table, json or yaml (default from config)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
