package card

// Card represents a single trading card record.
//
// Optional values are pointers: a nil AttackPoints means the card has no
// attack value at all, which is different from an attack of 0.
type Card struct {
	ID            int      `json:"id" yaml:"id"`
	Name          *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Description   *string  `json:"desc,omitempty" yaml:"desc,omitempty"`
	CardType      *string  `json:"type,omitempty" yaml:"type,omitempty"`
	AttackPoints  *int     `json:"atk,omitempty" yaml:"atk,omitempty"`
	DefensePoints *int     `json:"def,omitempty" yaml:"def,omitempty"`
	Level         *int     `json:"lvl,omitempty" yaml:"lvl,omitempty"`
	Race          *string  `json:"race,omitempty" yaml:"race,omitempty"`
	Attribute     *string  `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	LinkRating    *int     `json:"linkval,omitempty" yaml:"linkval,omitempty"`
	LinkMarkers   []string `json:"linkmarkers,omitempty" yaml:"linkmarkers,omitempty"`
	Scale         *int     `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// DisplayName returns the card name, or an empty string when it has none.
func (c *Card) DisplayName() string {
	return deref(c.Name)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to v, for building cards with optional values.
func Ptr[T any](v T) *T { return &v }
