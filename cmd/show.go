package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardquery/cardquery/internal/card"
	"github.com/cardquery/cardquery/internal/filter"
	"github.com/cardquery/cardquery/internal/render"
	"github.com/cardquery/cardquery/internal/repository"
)

var showCmd = &cobra.Command{
	Use:   "show [id|name]",
	Short: "Display every detail of a single card",
	Long: `Show prints one card with its full description.
The card is found by its numeric id or by name; names are matched without
regard to case and a unique partial name is enough.

Examples:
  cardquery show 46986414
  cardquery show "dark magician"
  cardquery show kuri`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		c, err := findCard(repo, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		render.Detail(out, c, render.TerminalWidth())
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// findCard looks a card up by id, then by exact name, then by unique partial name
func findCard(repo *repository.Repository, key string) (*card.Card, error) {
	if id, err := strconv.Atoi(key); err == nil {
		f, err := filter.NewNumber(filter.Equal, id)
		if err != nil {
			return nil, err
		}
		matches, err := repo.ByNumberFilter(f, "Id")
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}

	f, err := filter.NewText(key)
	if err != nil {
		return nil, err
	}
	matches, err := repo.ByTextFilter(f, "Name")
	if err != nil {
		return nil, err
	}

	for _, c := range matches {
		if strings.EqualFold(c.DisplayName(), key) {
			return c, nil
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("card not found: %s", key)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, 5)
		for i, c := range matches {
			if i == 5 {
				names = append(names, "...")
				break
			}
			names = append(names, c.DisplayName())
		}
		return nil, fmt.Errorf("%q matches %d cards: %s", key, len(matches), strings.Join(names, ", "))
	}
}
