package card

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when a field name is not in the catalog.
	ErrUnknownField = errors.New("unknown field")
	// ErrFieldKind is returned when a field is resolved as the wrong kind,
	// e.g. a text field used in a numeric comparison.
	ErrFieldKind = errors.New("field kind mismatch")
)

// Kind is the value kind a field resolves to.
type Kind uint8

const (
	KindText Kind = iota
	KindInt
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Field describes one named, queryable card field.
type Field struct {
	Name string // canonical name, e.g. AttackPoints
	JSON string // key in the card document, e.g. atk
	Kind Kind

	text func(*Card) *string
	num  func(*Card) *int
	list func(*Card) []string
}

// fields is the catalog, in card declaration order.
var fields = []Field{
	{Name: "Id", JSON: "id", Kind: KindInt, num: cardID},
	{Name: "Name", JSON: "name", Kind: KindText, text: func(c *Card) *string { return c.Name }},
	{Name: "Description", JSON: "desc", Kind: KindText, text: func(c *Card) *string { return c.Description }},
	{Name: "CardType", JSON: "type", Kind: KindText, text: func(c *Card) *string { return c.CardType }},
	{Name: "AttackPoints", JSON: "atk", Kind: KindInt, num: func(c *Card) *int { return c.AttackPoints }},
	{Name: "DefensePoints", JSON: "def", Kind: KindInt, num: func(c *Card) *int { return c.DefensePoints }},
	{Name: "Level", JSON: "lvl", Kind: KindInt, num: func(c *Card) *int { return c.Level }},
	{Name: "Race", JSON: "race", Kind: KindText, text: func(c *Card) *string { return c.Race }},
	{Name: "Attribute", JSON: "attribute", Kind: KindText, text: func(c *Card) *string { return c.Attribute }},
	{Name: "LinkRating", JSON: "linkval", Kind: KindInt, num: func(c *Card) *int { return c.LinkRating }},
	{Name: "LinkMarkers", JSON: "linkmarkers", Kind: KindList, list: func(c *Card) []string { return c.LinkMarkers }},
	{Name: "Scale", JSON: "scale", Kind: KindInt, num: func(c *Card) *int { return c.Scale }},
}

// cardID returns a copy of the id so callers cannot write through it.
func cardID(c *Card) *int {
	id := c.ID
	return &id
}

// catalog indexes fields by both canonical name and JSON key.
var catalog = func() map[string]*Field {
	m := make(map[string]*Field, len(fields)*2)
	for i := range fields {
		f := &fields[i]
		m[f.Name] = f
		m[f.JSON] = f
	}
	return m
}()

// Fields returns the catalog in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Names returns every name the catalog accepts, canonical names first.
func Names() []string {
	names := make([]string, 0, len(fields)*2)
	for _, f := range fields {
		names = append(names, f.Name)
	}
	for _, f := range fields {
		names = append(names, f.JSON)
	}
	return names
}

// Lookup finds a field by canonical name or JSON key. Names are case-sensitive.
func Lookup(name string) (Field, error) {
	f, ok := catalog[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return *f, nil
}

func lookupKind(name string, want Kind) (*Field, error) {
	f, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if f.Kind != want {
		return nil, fmt.Errorf("%w: %s holds %s values, not %s", ErrFieldKind, f.Name, f.Kind, want)
	}
	return f, nil
}

// TextAccessor returns the accessor for a text-valued field.
func TextAccessor(name string) (func(*Card) *string, error) {
	f, err := lookupKind(name, KindText)
	if err != nil {
		return nil, err
	}
	return f.text, nil
}

// IntAccessor returns the accessor for an integer-valued field.
func IntAccessor(name string) (func(*Card) *int, error) {
	f, err := lookupKind(name, KindInt)
	if err != nil {
		return nil, err
	}
	return f.num, nil
}

// ListAccessor returns the accessor for a list-valued field.
func ListAccessor(name string) (func(*Card) []string, error) {
	f, err := lookupKind(name, KindList)
	if err != nil {
		return nil, err
	}
	return f.list, nil
}

// Text resolves a text-valued field by name. A nil result means the card has
// no value for the field.
func (c *Card) Text(name string) (*string, error) {
	get, err := TextAccessor(name)
	if err != nil {
		return nil, err
	}
	return get(c), nil
}

// Int resolves an integer-valued field by name.
func (c *Card) Int(name string) (*int, error) {
	get, err := IntAccessor(name)
	if err != nil {
		return nil, err
	}
	return get(c), nil
}

// List resolves a list-valued field by name.
func (c *Card) List(name string) ([]string, error) {
	get, err := ListAccessor(name)
	if err != nil {
		return nil, err
	}
	return get(c), nil
}
