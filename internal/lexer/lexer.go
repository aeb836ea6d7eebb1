package lexer

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-lyml/errors"
	"github.com/KimNorgaard/go-lyml/token"
)

const (
	LF   = "\n"
	CRLF = "\r\n"
)

// Line is one physical source line, split into its structural parts.
type Line struct {
	Number  int    // 1-indexed
	Indent  int    // leading spaces
	Prefix  string // token.SequenceMarker for list items
	Content string // trimmed text before the comment
	Comment string // trimmed text after the comment marker
	Blank   bool   // nothing but whitespace
}

// Lexer splits LYML source into lines.
type Lexer struct {
	lines []string
	pos   int
}

// DetectNewline returns CRLF when data contains one, LF otherwise.
func DetectNewline(data []byte) string {
	if bytes.Contains(data, []byte(CRLF)) {
		return CRLF
	}
	return LF
}

// New creates a lexer over data, splitting lines on newline. An empty
// newline splits on LF; Next strips the carriage return of a CRLF line, so
// mixed line endings read the same. Input containing a tab is rejected.
func New(data []byte, newline string) (*Lexer, error) {
	if bytes.IndexByte(data, '\t') >= 0 {
		return nil, errors.New(errors.TabIndentation, 0, "tabs cannot be used for indentation")
	}
	if newline == "" {
		newline = LF
	}

	l := &Lexer{}
	if len(data) == 0 {
		return l, nil
	}
	src := strings.TrimSuffix(string(data), newline)
	l.lines = strings.Split(src, newline)
	return l, nil
}

// Next returns the next line. ok is false once the input is exhausted.
func (l *Lexer) Next() (line Line, ok bool, err error) {
	if l.pos >= len(l.lines) {
		return Line{}, false, nil
	}
	raw := strings.TrimRight(l.lines[l.pos], " \r\n\v\f\x00")
	l.pos++

	line.Number = l.pos
	if raw == "" {
		line.Blank = true
		return line, true, nil
	}
	if !isLeadingChar(raw[0]) {
		r, _ := utf8.DecodeRuneInString(raw)
		return Line{}, false, errors.New(errors.InvalidLeadingCharacter, line.Number,
			"unexpected character %s", strconv.Quote(string(r)))
	}

	trimmed := strings.TrimLeft(raw, " ")
	line.Indent = len(raw) - len(trimmed)
	if strings.HasPrefix(trimmed, token.SequenceMarker) {
		line.Prefix = token.SequenceMarker
	}
	line.Content, line.Comment = SplitComment(trimmed)
	return line, true, nil
}

// SplitComment separates s at the first comment marker that is not inside a
// quoted span. Both halves are trimmed.
func SplitComment(s string) (content, comment string) {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == token.SingleQuote || c == token.DoubleQuote:
			if i == 0 || opensQuote(s[i-1]) {
				quote = c
			}
		case c == token.Comment:
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
		}
	}
	return strings.TrimSpace(s), ""
}

// opensQuote reports whether a quote following c starts a quoted span.
func opensQuote(c byte) bool {
	switch c {
	case ' ', token.Colon, token.Comma, token.LBrack, token.LBrace:
		return true
	}
	return false
}

func isLeadingChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_', c == ' ', c == token.Comment, c == token.Dash:
		return true
	}
	return false
}
