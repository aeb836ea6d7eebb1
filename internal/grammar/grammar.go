// Package grammar turns text fragments into typed values.
package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-lyml/errors"
	"github.com/KimNorgaard/go-lyml/token"
	"github.com/KimNorgaard/go-lyml/value"
)

var numeric = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// Parse classifies fragment and returns its value. Errors carry line.
//
// Closing quotes and brackets are checked against the last byte of the
// fragment only; nesting inside a collection is not balanced.
func Parse(fragment string, line int) (value.Value, error) {
	s := strings.TrimSpace(fragment)

	switch {
	case s == "":
		return value.Null{}, nil
	case numeric.MatchString(s):
		return parseNumber(s), nil
	case s == "true":
		return value.Bool(true), nil
	case s == "false":
		return value.Bool(false), nil
	case s[0] == token.SingleQuote || s[0] == token.DoubleQuote:
		if len(s) < 2 || s[len(s)-1] != s[0] {
			return nil, errors.New(errors.MissingClosingQuote, line, "missing closing quote")
		}
		return value.String(s[1 : len(s)-1]), nil
	case s[0] == token.LBrack:
		if s[len(s)-1] != token.RBrack {
			return nil, errors.New(errors.MissingClosingBracket, line, "missing closing bracket")
		}
		return parseList(strings.TrimSpace(s[1:len(s)-1]), line)
	case s[0] == token.LBrace:
		if s[len(s)-1] != token.RBrace {
			return nil, errors.New(errors.MissingClosingBracket, line, "missing closing bracket")
		}
		return parseMap(strings.TrimSpace(s[1:len(s)-1]), line)
	case strings.IndexByte(s, token.Colon) >= 0:
		name, v, err := SplitPair(s, line)
		if err != nil {
			return nil, err
		}
		m := value.NewMap()
		m.Set(name, v)
		return m, nil
	}
	return value.String(s), nil
}

// SplitPair splits s at its first colon into a trimmed name and the value
// of the remainder.
func SplitPair(s string, line int) (string, value.Value, error) {
	name, rest, _ := strings.Cut(s, string(token.Colon))
	v, err := Parse(rest, line)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(name), v, nil
}

// IsNumeric reports whether s reads back as an Int or Float.
func IsNumeric(s string) bool {
	return numeric.MatchString(s)
}

func parseNumber(s string) value.Value {
	if !strings.Contains(s, ".") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return value.Int(i)
		}
	}
	// Integers beyond int64 fall back to Float. The pattern only admits
	// decimal literals, so ParseFloat can fail on range alone.
	f, _ := strconv.ParseFloat(s, 64)
	return value.Float(f)
}

func parseList(interior string, line int) (value.Value, error) {
	list := value.List{}
	if interior == "" {
		return list, nil
	}

	var elements []string
	if interior[0] == token.LBrace {
		elements = splitBeforeBrace(interior)
	} else {
		elements = strings.Split(interior, string(token.Comma))
	}

	for _, el := range elements {
		v, err := Parse(el, line)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func parseMap(interior string, line int) (value.Value, error) {
	m := value.NewMap()
	for _, segment := range strings.Split(interior, string(token.Comma)) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		name, v, err := SplitPair(segment, line)
		if err != nil {
			return nil, err
		}
		m.Set(name, v)
	}
	return m, nil
}

// splitBeforeBrace splits s on the commas whose next non-space byte opens a
// map, so commas inside inline maps stay with their element.
func splitBeforeBrace(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != token.Comma {
			continue
		}
		rest := strings.TrimLeft(s[i+1:], " ")
		if rest != "" && rest[0] == token.LBrace {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
