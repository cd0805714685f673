package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func darkMagician() *Card {
	return &Card{
		ID:            46986414,
		Name:          Ptr("Dark Magician"),
		Description:   Ptr("The ultimate wizard in terms of attack and defense."),
		CardType:      Ptr("Normal Monster"),
		AttackPoints:  Ptr(2500),
		DefensePoints: Ptr(2100),
		Level:         Ptr(7),
		Race:          Ptr("Spellcaster"),
		Attribute:     Ptr("DARK"),
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantKind Kind
	}{
		{"Id", "Id", KindInt},
		{"id", "Id", KindInt},
		{"Description", "Description", KindText},
		{"desc", "Description", KindText},
		{"atk", "AttackPoints", KindInt},
		{"lvl", "Level", KindInt},
		{"LinkMarkers", "LinkMarkers", KindList},
		{"type", "CardType", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, f.Name)
			assert.Equal(t, tt.wantKind, f.Kind)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"", "Attack", "attackpoints", "DESC"} {
		_, err := Lookup(name)
		assert.ErrorIs(t, err, ErrUnknownField, "name %q", name)
	}
}

func TestFields_DeclarationOrder(t *testing.T) {
	fs := Fields()
	require.Len(t, fs, 12)
	assert.Equal(t, "Id", fs[0].Name)
	assert.Equal(t, "Scale", fs[len(fs)-1].Name)

	// callers get a copy
	fs[0].Name = "changed"
	assert.Equal(t, "Id", Fields()[0].Name)
}

func TestNames_ContainsBothForms(t *testing.T) {
	names := Names()
	assert.Len(t, names, 24)
	assert.Contains(t, names, "AttackPoints")
	assert.Contains(t, names, "atk")
}

func TestCard_Text(t *testing.T) {
	c := darkMagician()

	v, err := c.Text("Name")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Dark Magician", *v)

	v, err = c.Text("desc")
	require.NoError(t, err)
	assert.Equal(t, "The ultimate wizard in terms of attack and defense.", *v)

	// present in catalog, absent on the card
	c.Race = nil
	v, err = c.Text("Race")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCard_Int(t *testing.T) {
	c := darkMagician()

	v, err := c.Int("AttackPoints")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2500, *v)

	v, err = c.Int("Id")
	require.NoError(t, err)
	assert.Equal(t, 46986414, *v)

	v, err = c.Int("Scale")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCard_IdAccessorDoesNotAlias(t *testing.T) {
	c := darkMagician()
	v, err := c.Int("Id")
	require.NoError(t, err)
	*v = 1
	assert.Equal(t, 46986414, c.ID)
}

func TestCard_KindMismatch(t *testing.T) {
	c := darkMagician()

	_, err := c.Int("Name")
	assert.ErrorIs(t, err, ErrFieldKind)

	_, err = c.Text("AttackPoints")
	assert.ErrorIs(t, err, ErrFieldKind)

	_, err = c.Text("LinkMarkers")
	assert.ErrorIs(t, err, ErrFieldKind)

	_, err = c.List("Name")
	assert.ErrorIs(t, err, ErrFieldKind)
	assert.False(t, errors.Is(err, ErrUnknownField))
}

func TestCard_List(t *testing.T) {
	c := &Card{ID: 1, LinkMarkers: []string{"Top", "Bottom-Left"}}
	v, err := c.List("linkmarkers")
	require.NoError(t, err)
	assert.Equal(t, []string{"Top", "Bottom-Left"}, v)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Dark Magician", darkMagician().DisplayName())
	assert.Equal(t, "", (&Card{ID: 1}).DisplayName())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
