// Package filter holds the descriptors accepted by the card repository:
// a text filter for string fields and a number filter for integer fields.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyQuery is returned when a text filter is built from an empty
	// or whitespace-only query.
	ErrEmptyQuery = errors.New("query cannot be empty")
	// ErrInvalidOperator is returned for operators outside the known six.
	ErrInvalidOperator = errors.New("invalid number operator")
)

// Text matches a text field against a query. By default matching is a
// case-insensitive substring search.
type Text struct {
	query     string
	exactCase bool
	wholeWord bool
}

// TextOption configures a Text filter.
type TextOption func(*Text)

// ExactCase makes the match case-sensitive.
func ExactCase() TextOption {
	return func(t *Text) { t.exactCase = true }
}

// WholeWord requires the match to end at a whitespace character or at the
// end of the text.
func WholeWord() TextOption {
	return func(t *Text) { t.wholeWord = true }
}

// NewText builds a text filter. The query is kept verbatim, surrounding
// whitespace included.
func NewText(query string, opts ...TextOption) (Text, error) {
	if strings.TrimSpace(query) == "" {
		return Text{}, ErrEmptyQuery
	}
	t := Text{query: query}
	for _, opt := range opts {
		opt(&t)
	}
	return t, nil
}

func (t Text) Query() string { return t.query }
func (t Text) ExactCase() bool { return t.exactCase }
func (t Text) WholeWord() bool { return t.wholeWord }

func (t Text) String() string {
	var flags []string
	if t.exactCase {
		flags = append(flags, "exact-case")
	}
	if t.wholeWord {
		flags = append(flags, "whole-word")
	}
	if len(flags) == 0 {
		return fmt.Sprintf("%q", t.query)
	}
	return fmt.Sprintf("%q (%s)", t.query, strings.Join(flags, ", "))
}

// Number compares an integer field against a right-hand operand.
type Number struct {
	op      Operator
	operand int
}

// NewNumber builds a number filter.
func NewNumber(op Operator, operand int) (Number, error) {
	if !op.Valid() {
		return Number{}, fmt.Errorf("%w: %s", ErrInvalidOperator, op)
	}
	return Number{op: op, operand: operand}, nil
}

func (n Number) Operator() Operator { return n.op }
func (n Number) Operand() int { return n.operand }

func (n Number) String() string {
	return fmt.Sprintf("%s %d", n.op, n.operand)
}

// Compare reports whether v satisfies the filter.
func (n Number) Compare(v int) (bool, error) {
	switch n.op {
	case NotEqual:
		return v != n.operand, nil
	case Equal:
		return v == n.operand, nil
	case LessThan:
		return v < n.operand, nil
	case LessThanOrEqual:
		return v <= n.operand, nil
	case GreaterThan:
		return v > n.operand, nil
	case GreaterThanOrEqual:
		return v >= n.operand, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidOperator, n.op)
	}
}
