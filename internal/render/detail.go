package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	ptext "github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/cardquery/cardquery/internal/card"
)

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Detail writes every known value of c, wrapping the description to width.
func Detail(w io.Writer, c *card.Card, width int) {
	label := color.New(color.FgCyan).SprintFunc()
	value := color.New(color.FgHiWhite).SprintfFunc()

	line := func(name, format string, args ...any) {
		fmt.Fprintf(w, "  %s %s\n", label(fmt.Sprintf("%-11s", name+":")), value(format, args...))
	}

	line("Card", "%s", c.DisplayName())
	line("ID", "%d", c.ID)
	if c.CardType != nil {
		line("Type", "%s", *c.CardType)
	}
	if c.Attribute != nil {
		line("Attribute", "%s", *c.Attribute)
	}
	if c.Race != nil {
		line("Race", "%s", *c.Race)
	}
	if c.Level != nil {
		line("Level", "%s", stars(*c.Level))
	}
	if c.Scale != nil {
		line("Scale", "%d", *c.Scale)
	}
	if c.LinkRating != nil {
		line("Link", "%d", *c.LinkRating)
	}
	if len(c.LinkMarkers) > 0 {
		line("Markers", "%s", strings.Join(c.LinkMarkers, " · "))
	}
	if c.AttackPoints != nil || c.DefensePoints != nil {
		line("ATK / DEF", "%s / %s", number(c.AttackPoints), number(c.DefensePoints))
	}

	if c.Description != nil && *c.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", label("Description:"))
		for _, paragraph := range strings.Split(*c.Description, "\n") {
			for _, l := range wrapText(paragraph, width-4) {
				fmt.Fprintf(w, "  %s\n", l)
			}
		}
	}
}

func stars(level int) string {
	if level <= 0 || level > 13 {
		return fmt.Sprintf("%d", level)
	}
	return fmt.Sprintf("%d %s", level, strings.Repeat("★", level))
}

// wrapText breaks text into lines no wider than width display columns. A
// single word wider than width gets a line of its own.
func wrapText(s string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	var line strings.Builder
	used := 0
	for _, word := range words {
		w := ptext.RuneWidthWithoutEscSequences(word)
		if used > 0 && used+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += w
	}
	return append(lines, line.String())
}
