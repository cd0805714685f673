package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardquery/cardquery/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card document",
	Long: `Validate checks that a card document can be loaded and that its cards are usable:
every card needs a non-zero id, and every queryable field should be populated
by at least one card.

Without a path the --dataset flag or the default dataset is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("card document not found: %s", path)
			}
		} else {
			var err error
			if path, err = resolveDatasetPath(); err != nil {
				return err
			}
		}

		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s Dataset '%s' is valid.\n", color.GreenString("✅"), path)
		} else {
			fmt.Fprintf(out, "%s Dataset '%s' has %d validation errors:\n", color.RedString("❌"), path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, color.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
