package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cardquery/cardquery/internal/card"
	"github.com/cardquery/cardquery/internal/dataset"
)

func sample() []*card.Card {
	return []*card.Card{
		{
			ID:            46986414,
			Name:          card.Ptr("Dark Magician"),
			Description:   card.Ptr("The ultimate wizard in terms of attack and defense."),
			CardType:      card.Ptr("Normal Monster"),
			AttackPoints:  card.Ptr(2500),
			DefensePoints: card.Ptr(2100),
			Level:         card.Ptr(7),
			Race:          card.Ptr("Spellcaster"),
			Attribute:     card.Ptr("DARK"),
		},
		{
			ID:           1861629,
			Name:         card.Ptr("Decode Talker"),
			CardType:     card.Ptr("Link Monster"),
			Description:  card.Ptr("2+ Effect Monsters\nGains 500 ATK for each monster it points to."),
			AttackPoints: card.Ptr(2300),
			LinkRating:   card.Ptr(3),
			LinkMarkers:  []string{"Top", "Bottom-Left", "Bottom-Right"},
		},
	}
}

func TestList_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, sample(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Dark Magician")
	assert.Contains(t, out, "Decode Talker")
	assert.Contains(t, out, "2500")
	// headers and footers are upper-cased by the table style
	assert.Contains(t, strings.ToLower(out), "2 cards")
}

func TestList_JSONCanBeReloaded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, sample(), FormatJSON))

	cards, err := dataset.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample(), cards)
}

func TestList_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, nil, FormatJSON))
	assert.JSONEq(t, `{"data": []}`, buf.String())
}

func TestList_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, sample(), "YAML"))

	var doc struct {
		Data []*card.Card `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, sample(), doc.Data)
}

func TestList_UnknownFormat(t *testing.T) {
	err := List(&bytes.Buffer{}, sample(), "csv")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	Fields(&buf, card.Fields())

	out := buf.String()
	assert.Contains(t, out, "AttackPoints")
	assert.Contains(t, out, "atk")
	assert.Contains(t, out, "integer")
	assert.Contains(t, out, "list")
}

func TestDetail(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	Detail(&buf, sample()[1], 30)

	out := buf.String()
	assert.Contains(t, out, "Decode Talker")
	assert.Contains(t, out, "Top · Bottom-Left · Bottom-Right")
	assert.Contains(t, out, "2300 / -")
	assert.NotContains(t, out, "Level:")

	for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.HasPrefix(l, "  Gains") {
			assert.LessOrEqual(t, len(l), 28)
		}
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("   ", 20))
	assert.Equal(t,
		[]string{"The ultimate wizard", "in terms of attack", "and defense."},
		wrapText("The ultimate wizard in terms of attack and defense.", 20))

	// multi-byte runes count one column each
	assert.Equal(t,
		[]string{"★★★★★ ★★★★★", "Éléphant · Dragon"},
		wrapText("★★★★★ ★★★★★ Éléphant · Dragon", 17))
	assert.Equal(t,
		[]string{"a", "Supercalifragilistic", "b"},
		wrapText("a Supercalifragilistic b", 10))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "3 ★★★", stars(3))
	assert.Equal(t, "0", stars(0))
}
