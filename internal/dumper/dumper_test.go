package dumper_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-lyml/internal/dumper"
	"github.com/KimNorgaard/go-lyml/internal/parser"
	"github.com/KimNorgaard/go-lyml/token"
	"github.com/KimNorgaard/go-lyml/value"
)

func mapOf(kv ...any) *value.Map {
	m := value.NewMap()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1].(value.Value))
	}
	return m
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		v        value.Value
		expected string
	}{
		{"nil", nil, ""},
		{"null", value.Null{}, ""},
		{"word", value.String("hello"), "hello"},
		{"empty string", value.String(""), "''"},
		{"spaces", value.String("hello world"), "'hello world'"},
		{"numeric string", value.String("42"), "'42'"},
		{"bool string", value.String("true"), "'true'"},
		{"quote", value.String("it's"), `'it\'s'`},
		{"backslash", value.String(`App\Router`), `'App\Router'`},
		{"int", value.Int(-3), "-3"},
		{"float", value.Float(1.25), "1.25"},
		{"whole float", value.Float(2), "2.0"},
		{"bool", value.Bool(false), "false"},
		{"list", value.List{value.Int(1), value.String("two"), value.Null{}}, "[ 1, two,  ]"},
		{"empty list", value.List{}, "[ ]"},
		{"map", mapOf("a", value.Int(1), "b", value.Bool(true)), "{ a: 1, b: true }"},
		{"single entry map", mapOf("a", value.Int(1)), "a: 1"},
		{"empty map", value.NewMap(), "{ }"},
		{"nested", value.List{mapOf("x", value.Int(1), "y", value.Int(2))}, "[ { x: 1, y: 2 } ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, dumper.FormatValue(tt.v))
		})
	}
}

func dump(t *testing.T, flags dumper.Flags, tokens ...token.Token) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, dumper.New(&buf, "", flags).Dump(tokens))
	return buf.String()
}

func TestDump_Flags(t *testing.T) {
	tokens := []token.Token{
		token.New(0, token.WithComment("header")),
		token.New(0, token.WithName("a")),
		token.New(2, token.WithName("b"), token.WithValue(value.Int(1)), token.WithComment("one")),
		token.New(4),
		token.New(2, token.WithComment("nested")),
		token.New(2, token.WithPrefix("-"), token.WithValue(value.String("x"))),
	}

	tests := []struct {
		name     string
		flags    dumper.Flags
		expected string
	}{
		{"none", 0, "a:\n  b: 1\n  - x\n"},
		{"empty lines", dumper.EmptyLines, "a:\n  b: 1\n\n  - x\n"},
		{"comments", dumper.Comments, "# header\na:\n  b: 1 # one\n  # nested\n  - x\n"},
		{"all", dumper.EmptyLines | dumper.Comments, "# header\na:\n  b: 1 # one\n\n  # nested\n  - x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, dump(t, tt.flags, tokens...))
		})
	}
}

func TestDump_BareSequenceMarkerIsEmpty(t *testing.T) {
	tok := token.New(2, token.WithPrefix("-"))
	require.Empty(t, dump(t, dumper.Comments, tok))
	require.Equal(t, "\n", dump(t, dumper.EmptyLines, tok))
}

func TestDump_Newline(t *testing.T) {
	var buf bytes.Buffer
	err := dumper.New(&buf, "\r\n", dumper.EmptyLines).Dump([]token.Token{
		token.New(0, token.WithName("a"), token.WithValue(value.Int(1))),
		token.New(0),
	})
	require.NoError(t, err)
	require.Equal(t, "a: 1\r\n\r\n", buf.String())
}

func TestFlags_Has(t *testing.T) {
	f := dumper.EmptyLines | dumper.Comments
	require.True(t, f.Has(dumper.Comments))
	require.True(t, f.Has(dumper.EmptyLines|dumper.Comments))
	require.False(t, dumper.Comments.Has(dumper.EmptyLines))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDump_WriteError(t *testing.T) {
	err := dumper.New(failingWriter{}, "", 0).Dump([]token.Token{token.New(0, token.WithName("a"))})
	require.EqualError(t, err, "disk full")
}

func TestDump_RoundTrip(t *testing.T) {
	input := "# config\nservices:\n  router:\n    class: 'App\\Router' # main\n    args: [ 1, 2.5, 'a b' ]\n    opts: { x: 1, y: true }\n\n  list:\n    - item\n    - 'quoted text'\n    - k: v\n"
	p, err := parser.New(parser.DefaultIndent, "")
	require.NoError(t, err)

	tokens, err := p.Parse([]byte(input))
	require.NoError(t, err)

	out := dump(t, dumper.EmptyLines|dumper.Comments, tokens...)
	require.Equal(t, input, out)

	again, err := p.Parse([]byte(out))
	require.NoError(t, err)
	require.Len(t, again, len(tokens))
	for i := range tokens {
		require.True(t, tokens[i].Equal(again[i]), "token %d: %s != %s", i, tokens[i], again[i])
	}
}
