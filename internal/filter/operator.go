package filter

import (
	"fmt"
	"strings"
)

// Operator is a relational operator used by number filters.
type Operator uint8

const (
	NotEqual Operator = iota
	Equal
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

// String returns the symbolic form of the operator.
func (o Operator) String() string {
	switch o {
	case NotEqual:
		return "!="
	case Equal:
		return "="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return fmt.Sprintf("Operator(%d)", uint8(o))
	}
}

// Valid reports whether o is one of the six known operators.
func (o Operator) Valid() bool {
	return o <= GreaterThanOrEqual
}

// ParseOperator converts a symbolic or mnemonic operator (">=", "ge", ...)
// to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "!=", "<>", "ne":
		return NotEqual, nil
	case "=", "==", "eq":
		return Equal, nil
	case "<", "lt":
		return LessThan, nil
	case "<=", "le":
		return LessThanOrEqual, nil
	case ">", "gt":
		return GreaterThan, nil
	case ">=", "ge":
		return GreaterThanOrEqual, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, s)
	}
}
