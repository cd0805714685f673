package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText_RejectsEmptyQuery(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n", "   "} {
		_, err := NewText(q)
		assert.ErrorIs(t, err, ErrEmptyQuery, "query %q", q)
	}
}

func TestNewText_Defaults(t *testing.T) {
	f, err := NewText("Magician")
	require.NoError(t, err)
	assert.Equal(t, "Magician", f.Query())
	assert.False(t, f.ExactCase())
	assert.False(t, f.WholeWord())
	assert.Equal(t, `"Magician"`, f.String())
}

func TestNewText_Options(t *testing.T) {
	f, err := NewText(" Magician ", ExactCase(), WholeWord())
	require.NoError(t, err)
	assert.Equal(t, " Magician ", f.Query())
	assert.True(t, f.ExactCase())
	assert.True(t, f.WholeWord())
	assert.Equal(t, `" Magician " (exact-case, whole-word)`, f.String())
}

func TestNewNumber(t *testing.T) {
	f, err := NewNumber(GreaterThanOrEqual, 5000)
	require.NoError(t, err)
	assert.Equal(t, GreaterThanOrEqual, f.Operator())
	assert.Equal(t, 5000, f.Operand())
	assert.Equal(t, ">= 5000", f.String())

	_, err = NewNumber(Operator(6), 1)
	assert.ErrorIs(t, err, ErrInvalidOperator)
}

func TestNumber_Compare(t *testing.T) {
	tests := []struct {
		op   Operator
		v    int
		want bool
	}{
		{NotEqual, 1, true},
		{NotEqual, 920, false},
		{Equal, 920, true},
		{Equal, 921, false},
		{LessThan, 919, true},
		{LessThan, 920, false},
		{LessThanOrEqual, 920, true},
		{LessThanOrEqual, 921, false},
		{GreaterThan, 921, true},
		{GreaterThan, 920, false},
		{GreaterThanOrEqual, 920, true},
		{GreaterThanOrEqual, 919, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			f, err := NewNumber(tt.op, 920)
			require.NoError(t, err)
			got, err := f.Compare(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "%d %s 920", tt.v, tt.op)
		})
	}
}

func TestNumber_CompareUnknownOperator(t *testing.T) {
	f := Number{op: Operator(42), operand: 1}
	_, err := f.Compare(1)
	assert.ErrorIs(t, err, ErrInvalidOperator)
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in   string
		want Operator
	}{
		{"!=", NotEqual},
		{"<>", NotEqual},
		{"NE", NotEqual},
		{"=", Equal},
		{"==", Equal},
		{"eq", Equal},
		{"<", LessThan},
		{"lt", LessThan},
		{"<=", LessThanOrEqual},
		{"le", LessThanOrEqual},
		{">", GreaterThan},
		{" gt ", GreaterThan},
		{">=", GreaterThanOrEqual},
		{"Ge", GreaterThanOrEqual},
	}

	for _, tt := range tests {
		got, err := ParseOperator(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	for _, bad := range []string{"", "=>", "like", "!"} {
		_, err := ParseOperator(bad)
		assert.ErrorIs(t, err, ErrInvalidOperator, "input %q", bad)
	}
}

func TestOperator_StringRoundTrip(t *testing.T) {
	for op := NotEqual; op <= GreaterThanOrEqual; op++ {
		assert.True(t, op.Valid())
		parsed, err := ParseOperator(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}
	assert.False(t, Operator(6).Valid())
	assert.Equal(t, "Operator(6)", Operator(6).String())
}
