package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cardquery/cardquery/internal/card"
	"github.com/cardquery/cardquery/internal/render"
)

// fieldsCmd represents the fields command
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the card fields that can be queried",
	Long: `Fields lists every queryable card field with its JSON key and kind.
Either name can be passed to text and number; text fields only work with
text, integer fields only with number.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		render.Fields(cmd.OutOrStdout(), card.Fields())
	},
}

func init() {
	RootCmd.AddCommand(fieldsCmd)
}
