package grammar

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-lyml/errors"
	"github.com/KimNorgaard/go-lyml/value"
)

func mapOf(kv ...any) *value.Map {
	m := value.NewMap()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1].(value.Value))
	}
	return m
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input    string
		expected value.Value
	}{
		{"", value.Null{}},
		{"   ", value.Null{}},
		{"5", value.Int(5)},
		{"-12", value.Int(-12)},
		{"+7", value.Int(7)},
		{"1.5", value.Float(1.5)},
		{"-0.25", value.Float(-0.25)},
		{".5", value.Float(0.5)},
		{"3.", value.Float(3)},
		{"99999999999999999999", value.Float(1e20)},
		{"1e5", value.String("1e5")},
		{"1.2.3", value.String("1.2.3")},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"True", value.String("True")},
		{"null", value.String("null")},
		{"'quoted'", value.String("quoted")},
		{`"double"`, value.String("double")},
		{"''", value.String("")},
		{`'it\'s'`, value.String(`it\'s`)},
		{"'5'", value.String("5")},
		{`App\Routing\Router`, value.String(`App\Routing\Router`)},
		{"  padded  ", value.String("padded")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input, 1)
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestParse_Collections(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected value.Value
	}{
		{"list", "[ a, 2, true ]", value.List{value.String("a"), value.Int(2), value.Bool(true)}},
		{"tight list", "[a,b]", value.List{value.String("a"), value.String("b")}},
		{"empty list", "[ ]", value.List{}},
		{"list with hole", "[a, ]", value.List{value.String("a"), value.Null{}}},
		{"list of maps", "[ { a: 1, b: 2 }, { c: 3 } ]", value.List{mapOf("a", value.Int(1), "b", value.Int(2)), mapOf("c", value.Int(3))}},
		{"list of pairs", "[ a: 1, b: 2 ]", value.List{mapOf("a", value.Int(1)), mapOf("b", value.Int(2))}},
		{"map", "{ host: localhost, port: 8080 }", mapOf("host", value.String("localhost"), "port", value.Int(8080))},
		{"empty map", "{}", value.NewMap()},
		{"map duplicate key", "{ a: 1, b: 2, a: 3 }", mapOf("a", value.Int(3), "b", value.Int(2))},
		{"map key without value", "{ a, b: 1 }", mapOf("a", value.Null{}, "b", value.Int(1))},
		{"map trailing comma", "{ a: 1, }", mapOf("a", value.Int(1))},
		{"map of list", "{ a: [x] }", mapOf("a", value.List{value.String("x")})},
		{"nested pair", "b: c", mapOf("b", value.String("c"))},
		{"nested pair chain", "a: b: 1", mapOf("a", mapOf("b", value.Int(1)))},
		{"pair with empty value", "a:", mapOf("a", value.Null{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input, 1)
			require.NoError(t, err)
			require.True(t, value.Equal(tt.expected, v), "expected %s, got %s", tt.expected, v)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{"'abc", errors.ErrMissingClosingQuote},
		{`"abc'`, errors.ErrMissingClosingQuote},
		{"'", errors.ErrMissingClosingQuote},
		{"[a, b", errors.ErrMissingClosingBracket},
		{"{ a: 1", errors.ErrMissingClosingBracket},
		{"[ 'a, b ]", errors.ErrMissingClosingQuote},
		{"[ [a, b], c ]", errors.ErrMissingClosingBracket},
		{"{ a: 'x }", errors.ErrMissingClosingQuote},
		{"k: [a", errors.ErrMissingClosingBracket},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input, 4)
			require.ErrorIs(t, err, tt.kind)

			var perr *errors.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, 4, perr.Line)
		})
	}
}

func TestSplitPair(t *testing.T) {
	name, v, err := SplitPair("  class :  App\\Router ", 1)
	require.NoError(t, err)
	require.Equal(t, "class", name)
	require.Equal(t, value.String(`App\Router`), v)

	name, v, err = SplitPair("url: http://example", 1)
	require.NoError(t, err)
	require.Equal(t, "url", name)
	require.True(t, value.Equal(mapOf("http", value.String("//example")), v))
}

func TestIsNumeric(t *testing.T) {
	require.True(t, IsNumeric("10"))
	require.True(t, IsNumeric("-1.0"))
	require.False(t, IsNumeric("1_000"))
	require.False(t, IsNumeric(""))
	require.False(t, IsNumeric("1e400"))
}

func TestParse_LargeFloat(t *testing.T) {
	v, err := Parse("1"+strings.Repeat("0", 400)+".5", 1)
	require.NoError(t, err)
	require.Equal(t, value.Float(math.Inf(1)), v)
}
