package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardquery/cardquery/internal/card"
	"github.com/cardquery/cardquery/internal/config"
	"github.com/cardquery/cardquery/internal/render"
	"github.com/cardquery/cardquery/internal/repository"
	"github.com/cardquery/cardquery/internal/suggest"
)

// resolveDatasetPath returns the --dataset path, or the configured default
func resolveDatasetPath() (string, error) {
	if datasetFlag != "" {
		return config.GetDatasetPath(datasetFlag)
	}

	defaultDataset, err := config.GetDefaultDataset()
	if err != nil {
		return "", fmt.Errorf("error getting default dataset: %w", err)
	}

	path, err := config.GetDatasetPath(defaultDataset)
	if err != nil {
		return "", fmt.Errorf("error loading default dataset: %w", err)
	}
	return path, nil
}

func openRepository() (*repository.Repository, error) {
	path, err := resolveDatasetPath()
	if err != nil {
		return nil, err
	}
	return repository.Open(path, repository.WithLogger(logger))
}

// outputFormat returns the --output value, or the configured default
func outputFormat() (string, error) {
	if outputFlag != "" {
		return outputFlag, nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Output, nil
}

func printCards(cmd *cobra.Command, cards []*card.Card) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	return render.List(cmd.OutOrStdout(), cards, format)
}

// withSuggestions appends "did you mean" hints to unknown field errors
func withSuggestions(err error, field string) error {
	if !errors.Is(err, card.ErrUnknownField) {
		return err
	}
	similar := suggest.Similar(field, card.Names())
	if len(similar) == 0 {
		return fmt.Errorf("%w (run 'cardquery fields' to list fields)", err)
	}
	return fmt.Errorf("%w, did you mean: %s?", err, strings.Join(similar, ", "))
}
