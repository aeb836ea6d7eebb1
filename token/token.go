// Package token defines the record produced for every source line.
package token

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-lyml/value"
)

// Syntax characters.
const (
	Comment     = '#'
	Dash        = '-'
	Colon       = ':'
	Comma       = ','
	SingleQuote = '\''
	DoubleQuote = '"'
	LBrack      = '['
	RBrack      = ']'
	LBrace      = '{'
	RBrace      = '}'
)

// SequenceMarker is the prefix of a list item line.
const SequenceMarker = "-"

// Token describes one source line.
type Token struct {
	indent  int
	prefix  string
	name    string
	value   value.Value
	comment string
}

// Option sets a field of a Token under construction.
type Option func(*Token)

// WithPrefix marks the token as a sequence item when prefix is SequenceMarker.
func WithPrefix(prefix string) Option {
	return func(t *Token) { t.prefix = prefix }
}

// WithName sets the block key name.
func WithName(name string) Option {
	return func(t *Token) { t.name = name }
}

// WithValue sets the value.
func WithValue(v value.Value) Option {
	return func(t *Token) { t.value = v }
}

// WithComment sets the trailing comment text, without the marker.
func WithComment(comment string) Option {
	return func(t *Token) { t.comment = comment }
}

// New returns a token at the given indentation.
func New(indent int, opts ...Option) Token {
	t := Token{indent: indent}
	for _, opt := range opts {
		opt(&t)
	}
	t.value = value.Or(t.value)
	return t
}

// Indent returns the number of leading spaces.
func (t Token) Indent() int { return t.indent }

// Prefix returns SequenceMarker for list items and "" otherwise.
func (t Token) Prefix() string { return t.prefix }

// Name returns the block key, or "" when the line has none.
func (t Token) Name() string { return t.name }

// Value returns the decoded value. It is never nil.
func (t Token) Value() value.Value { return value.Or(t.value) }

// Comment returns the trailing comment, or "".
func (t Token) Comment() string { return t.comment }

// IsEmpty reports whether the token has neither a name nor a value, as for
// blank and comment-only lines.
func (t Token) IsEmpty() bool {
	return t.name == "" && value.IsNull(t.value)
}

// IsBlock reports whether the token introduces a block key.
func (t Token) IsBlock() bool { return t.name != "" }

// IsSequence reports whether the token is a list item.
func (t Token) IsSequence() bool { return t.prefix == SequenceMarker }

// Equal reports whether t and o describe the same line.
func (t Token) Equal(o Token) bool {
	return t.indent == o.indent &&
		t.prefix == o.prefix &&
		t.name == o.name &&
		t.comment == o.comment &&
		value.Equal(t.value, o.value)
}

func (t Token) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "indent=%d", t.indent)
	if t.prefix != "" {
		fmt.Fprintf(&out, " prefix=%q", t.prefix)
	}
	if t.name != "" {
		fmt.Fprintf(&out, " name=%q", t.name)
	}
	if !value.IsNull(t.value) {
		fmt.Fprintf(&out, " value=%s", t.value)
	}
	if t.comment != "" {
		fmt.Fprintf(&out, " comment=%q", t.comment)
	}
	return out.String()
}
