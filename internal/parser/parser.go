package parser

import (
	"strings"

	"github.com/KimNorgaard/go-lyml/errors"
	"github.com/KimNorgaard/go-lyml/internal/grammar"
	"github.com/KimNorgaard/go-lyml/internal/lexer"
	"github.com/KimNorgaard/go-lyml/token"
	"github.com/KimNorgaard/go-lyml/value"
)

// DefaultIndent is the indentation width used when none is configured.
const DefaultIndent = 2

// Parser turns LYML source into tokens. It holds configuration only, so a
// single Parser may be used concurrently.
type Parser struct {
	indent  int
	newline string
}

// New creates a parser. indent must be positive; an empty newline splits on
// LF and accepts CRLF lines too.
func New(indent int, newline string) (*Parser, error) {
	if indent < 1 {
		return nil, errors.New(errors.InvalidConfiguration, 0, "indentation must be greater than zero, got %d", indent)
	}
	return &Parser{indent: indent, newline: newline}, nil
}

// Indent returns the configured indentation width.
func (p *Parser) Indent() int { return p.indent }

// scope is an open block key: the index of its token and its name.
type scope struct {
	index int
	name  string
}

// state is owned by a single Parse call.
type state struct {
	width  int
	tokens []token.Token
	scopes []scope
}

// Parse returns one token per line of data. It stops at the first error and
// returns no tokens in that case.
func (p *Parser) Parse(data []byte) ([]token.Token, error) {
	l, err := lexer.New(data, p.newline)
	if err != nil {
		return nil, err
	}

	s := &state{width: p.indent}
	for {
		line, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := s.parseLine(line); err != nil {
			return nil, err
		}
	}
	return s.tokens, nil
}

func (s *state) parseLine(line lexer.Line) error {
	if line.Blank {
		s.tokens = append(s.tokens, token.New(0))
		return nil
	}

	// Scopes close before validation so a line can return to the level of
	// an earlier sibling key.
	s.rewind(line.Indent)
	if err := s.checkIndent(line); err != nil {
		return err
	}

	// Comment-only lines are validated like block lines but open nothing.
	if line.Content == "" {
		s.tokens = append(s.tokens, token.New(line.Indent, token.WithComment(line.Comment)))
		return nil
	}

	opts := []token.Option{token.WithComment(line.Comment)}
	var (
		v   value.Value
		err error
	)
	switch {
	case line.Prefix != "":
		v, err = grammar.Parse(strings.TrimPrefix(line.Content, line.Prefix), line.Number)
		opts = append(opts, token.WithPrefix(line.Prefix))
	case strings.IndexByte(line.Content, token.Colon) >= 0:
		var name string
		name, v, err = grammar.SplitPair(line.Content, line.Number)
		opts = append(opts, token.WithName(name))
		s.scopes = append(s.scopes, scope{index: len(s.tokens), name: name})
	}
	if err != nil {
		return err
	}

	s.tokens = append(s.tokens, token.New(line.Indent, append(opts, token.WithValue(v))...))
	return nil
}

// rewind closes every open scope that is not shallower than indent.
func (s *state) rewind(indent int) {
	for len(s.scopes) > 0 && s.tokens[s.top().index].Indent() >= indent {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

func (s *state) top() scope {
	return s.scopes[len(s.scopes)-1]
}

func (s *state) checkIndent(line lexer.Line) error {
	if line.Prefix != "" {
		ref, ok := s.listReference()
		if !ok || line.Indent != ref.Indent()+s.width {
			return errors.New(errors.InvalidListItemIndent, line.Number, "invalid list item indent")
		}
		return nil
	}

	if line.Indent%s.width != 0 {
		return errors.New(errors.UnexpectedIndentation, line.Number, "unexpected indentation")
	}
	if line.Indent == 0 {
		return nil
	}
	if len(s.scopes) == 0 || line.Indent != s.tokens[s.top().index].Indent()+s.width {
		return errors.New(errors.UnexpectedIndentation, line.Number, "unexpected indentation")
	}
	return nil
}

// listReference returns the token a list item aligns to: the open scope, or
// the preceding line when no scope is open.
func (s *state) listReference() (token.Token, bool) {
	if len(s.scopes) > 0 {
		return s.tokens[s.top().index], true
	}
	if len(s.tokens) > 0 {
		return s.tokens[len(s.tokens)-1], true
	}
	return token.Token{}, false
}
