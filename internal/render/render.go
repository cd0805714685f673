// Package render writes cards to the terminal as tables, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/cardquery/cardquery/internal/card"
)

// Output formats accepted by List.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// document mirrors the input shape so JSON output can be loaded again.
type document struct {
	Data []*card.Card `json:"data" yaml:"data"`
}

// List writes cards in the given format.
func List(w io.Writer, cards []*card.Card, format string) error {
	switch strings.ToLower(format) {
	case FormatTable, "":
		return Table(w, cards)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Data: nonNil(cards)})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Data: nonNil(cards)}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

func nonNil(cards []*card.Card) []*card.Card {
	if cards == nil {
		return []*card.Card{}
	}
	return cards
}

// Table writes a one-row-per-card summary table.
func Table(w io.Writer, cards []*card.Card) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Name", "Type", "ATK", "DEF", "Level", "Race", "Attribute"})

	for _, c := range cards {
		tw.AppendRow(table.Row{
			c.ID,
			text(c.Name),
			text(c.CardType),
			number(c.AttackPoints),
			number(c.DefensePoints),
			number(c.Level),
			text(c.Race),
			text(c.Attribute),
		})
	}

	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d cards", len(cards))})
	tw.Render()
	return nil
}

// Fields writes the field catalog.
func Fields(w io.Writer, fields []card.Field) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Field", "JSON key", "Kind"})
	for _, f := range fields {
		tw.AppendRow(table.Row{f.Name, f.JSON, f.Kind.String()})
	}
	tw.Render()
}

func text(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func number(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}
