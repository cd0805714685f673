package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cardquery/cardquery/internal/config"
	"github.com/cardquery/cardquery/internal/dataset"
)

// datasetCmd represents the dataset command group
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage card documents in your dataset library",
	Long:  `Commands for managing card documents in your dataset library.`,
}

// datasetListCmd represents the dataset ls command
var datasetListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available datasets in your library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDatasetLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Dataset library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'cardquery dataset init' to create it.")
			return nil
		}

		defaultDataset, err := config.GetDefaultDataset()
		if err != nil {
			return fmt.Errorf("error getting default dataset: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading dataset library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}

			cards, err := dataset.LoadFile(filepath.Join(libraryPath, entry.Name()), logger)
			if err != nil {
				// Not a card document, skip
				logger.Debug("skipping dataset", zap.String("file", entry.Name()), zap.Error(err))
				continue
			}
			found++

			name := strings.TrimSuffix(entry.Name(), ".json")
			if name == defaultDataset || entry.Name() == defaultDataset {
				fmt.Fprintf(out, "* %s (%d cards) [DEFAULT]\n", name, len(cards))
			} else {
				fmt.Fprintf(out, "  %s (%d cards)\n", name, len(cards))
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No datasets found in your library.")
			fmt.Fprintln(out, "You can add card documents by copying them to:", libraryPath)
		}
		return nil
	},
}

// datasetSetDefaultCmd represents the dataset set-default command
var datasetSetDefaultCmd = &cobra.Command{
	Use:   "set-default [dataset_name]",
	Short: "Set the default dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path, err := config.GetDatasetPath(name)
		if err != nil {
			return err
		}

		// Make sure it is a card document before storing it
		if _, err := dataset.LoadFile(path, logger); err != nil {
			return fmt.Errorf("not a valid card document: %w", err)
		}

		if err := config.SetDefaultDataset(name); err != nil {
			return fmt.Errorf("error setting default dataset: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default dataset set to: %s\n", name)
		return nil
	},
}

// datasetInitCmd represents the dataset init command
var datasetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the dataset library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDatasetLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating dataset library: %w", err)
		}

		fmt.Fprintln(out, "Dataset library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add card documents by copying them to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetSetDefaultCmd)
	datasetCmd.AddCommand(datasetInitCmd)
}
