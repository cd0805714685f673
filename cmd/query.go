package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cardquery/cardquery/internal/filter"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every card in the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		return printCards(cmd, repo.All())
	},
}

// textCmd represents the text filter command
var textCmd = &cobra.Command{
	Use:   "text [field] [query]",
	Short: "Filter cards by a text field",
	Long: `Text returns the cards whose text field contains the query.

By default the match is a case-insensitive substring search. --exact-case
compares letters verbatim; --whole-word only accepts a match that is followed
by whitespace or the end of the text.

Examples:
  cardquery text Description "in terms of attack and defense"
  cardquery text Name magician --whole-word
  cardquery text race Dragon --exact-case`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, query := args[0], args[1]

		exactCase, _ := cmd.Flags().GetBool("exact-case")
		wholeWord, _ := cmd.Flags().GetBool("whole-word")

		var opts []filter.TextOption
		if exactCase {
			opts = append(opts, filter.ExactCase())
		}
		if wholeWord {
			opts = append(opts, filter.WholeWord())
		}

		f, err := filter.NewText(query, opts...)
		if err != nil {
			return err
		}

		repo, err := openRepository()
		if err != nil {
			return err
		}

		cards, err := repo.ByTextFilter(f, field)
		if err != nil {
			return withSuggestions(err, field)
		}
		return printCards(cmd, cards)
	},
}

// numberCmd represents the number filter command
var numberCmd = &cobra.Command{
	Use:   "number [field] [operator] [value]",
	Short: "Filter cards by an integer field",
	Long: `Number returns the cards whose integer field satisfies the comparison.
Cards that have no value for the field are never returned.

Operators: = (eq), != (ne), < (lt), <= (le), > (gt), >= (ge).
Put negative values after "--" so they are not read as flags.

Examples:
  cardquery number AttackPoints = 920
  cardquery number atk ge 5000
  cardquery number Id ne -- -1`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := args[0]

		op, err := filter.ParseOperator(args[1])
		if err != nil {
			return err
		}

		operand, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid value %q: must be an integer", args[2])
		}

		f, err := filter.NewNumber(op, operand)
		if err != nil {
			return err
		}

		repo, err := openRepository()
		if err != nil {
			return err
		}

		cards, err := repo.ByNumberFilter(f, field)
		if err != nil {
			return withSuggestions(err, field)
		}
		return printCards(cmd, cards)
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(textCmd)
	RootCmd.AddCommand(numberCmd)

	textCmd.Flags().BoolP("exact-case", "e", false, "Match letter case exactly")
	textCmd.Flags().BoolP("whole-word", "w", false, "Require the match to end at whitespace or the end of the text")
}
