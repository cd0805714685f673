package validator

import (
	"fmt"
	"strings"

	"github.com/cardquery/cardquery/internal/card"
	"github.com/cardquery/cardquery/internal/dataset"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DatasetPath string
	Results     ValidationResults
}

func NewValidator(datasetPath string) *Validator {
	return &Validator{
		DatasetPath: datasetPath,
		Results:     ValidationResults{},
	}
}

// Validate loads the dataset and checks it. A document that cannot be read
// or decoded is returned as an error; problems with its content are
// collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	cards, err := dataset.LoadFile(v.DatasetPath, nil)
	if err != nil {
		return v.Results, err
	}

	v.ValidateCards(cards)
	return v.Results, nil
}

// ValidateCards checks an already loaded collection.
func (v *Validator) ValidateCards(cards []*card.Card) ValidationResults {
	if len(cards) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no cards found in data array")
		return v.Results
	}

	v.validateIDs(cards)
	v.validateFieldCoverage(cards)

	return v.Results
}

// validateIDs checks every card has a non-zero id, and warns on repeats
func (v *Validator) validateIDs(cards []*card.Card) {
	seen := make(map[int]int, len(cards))
	missing := 0
	for i, c := range cards {
		if c.ID == 0 {
			missing++
			if missing <= 5 {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("card #%d (%s) has no id", i+1, describe(c)))
			}
			continue
		}
		if first, ok := seen[c.ID]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card #%d reuses id %d of card #%d", i+1, c.ID, first+1))
			continue
		}
		seen[c.ID] = i
	}

	if missing > 5 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%d more cards have no id", missing-5))
	}
}

// validateFieldCoverage warns about catalog fields no card has a value for
func (v *Validator) validateFieldCoverage(cards []*card.Card) {
	var unpopulated []string
	for _, f := range card.Fields() {
		if !populated(cards, f) {
			unpopulated = append(unpopulated, f.Name)
		}
	}

	if len(unpopulated) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("fields never populated: %s", strings.Join(unpopulated, ", ")))
	}
}

func populated(cards []*card.Card, f card.Field) bool {
	for _, c := range cards {
		switch f.Kind {
		case card.KindText:
			if s, err := c.Text(f.Name); err == nil && s != nil && strings.TrimSpace(*s) != "" {
				return true
			}
		case card.KindInt:
			if n, err := c.Int(f.Name); err == nil && n != nil {
				return true
			}
		case card.KindList:
			if l, err := c.List(f.Name); err == nil && len(l) > 0 {
				return true
			}
		}
	}
	return false
}

func describe(c *card.Card) string {
	if name := c.DisplayName(); name != "" {
		return name
	}
	return "unnamed"
}
