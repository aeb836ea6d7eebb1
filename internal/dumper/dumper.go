package dumper

import (
	"io"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-lyml/internal/grammar"
	"github.com/KimNorgaard/go-lyml/token"
	"github.com/KimNorgaard/go-lyml/value"
)

// Flags select which non-structural lines are written.
type Flags uint8

const (
	// EmptyLines writes blank tokens as empty lines.
	EmptyLines Flags = 1 << iota
	// Comments writes captured comments.
	Comments
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// DefaultNewline terminates every written line unless configured otherwise.
const DefaultNewline = "\n"

// Dumper writes tokens to an output stream.
type Dumper struct {
	w       io.Writer
	newline string
	flags   Flags
}

// New returns a dumper that writes to w. An empty newline selects
// DefaultNewline.
func New(w io.Writer, newline string, flags Flags) *Dumper {
	if newline == "" {
		newline = DefaultNewline
	}
	return &Dumper{w: w, newline: newline, flags: flags}
}

// Dump writes every token in order.
func (d *Dumper) Dump(tokens []token.Token) error {
	for _, t := range tokens {
		if err := d.writeToken(t); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) write(s string) error {
	_, err := io.WriteString(d.w, s)
	return err
}

func (d *Dumper) writeToken(t token.Token) error {
	indent := strings.Repeat(" ", t.Indent())

	if t.IsEmpty() {
		switch {
		case t.Comment() == "" && d.flags.Has(EmptyLines):
			return d.write(d.newline)
		case t.Comment() != "" && d.flags.Has(Comments):
			return d.write(indent + "# " + t.Comment() + d.newline)
		}
		return nil
	}

	var out strings.Builder
	out.WriteString(indent)
	if t.IsSequence() {
		out.WriteString(token.SequenceMarker + " " + FormatValue(t.Value()))
	}
	if t.IsBlock() {
		out.WriteString(t.Name() + ":")
		if !value.IsNull(t.Value()) {
			out.WriteString(" " + FormatValue(t.Value()))
		}
	}
	if t.Comment() != "" && d.flags.Has(Comments) {
		out.WriteString(" # " + t.Comment())
	}
	out.WriteString(d.newline)
	return d.write(out.String())
}

// FormatValue renders v so that the value grammar reads it back.
func FormatValue(v value.Value) string {
	switch x := value.Or(v).(type) {
	case value.String:
		return formatString(string(x))
	case value.Int:
		return strconv.FormatInt(int64(x), 10)
	case value.Float:
		s := strconv.FormatFloat(float64(x), 'f', -1, 64)
		if grammar.IsNumeric(s) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case value.Bool:
		return strconv.FormatBool(bool(x))
	case value.List:
		elements := make([]string, 0, len(x))
		for _, el := range x {
			elements = append(elements, FormatValue(el))
		}
		if len(elements) == 0 {
			return "[ ]"
		}
		return "[ " + strings.Join(elements, ", ") + " ]"
	case *value.Map:
		pairs := make([]string, 0, x.Len())
		for k, el := range x.All() {
			pairs = append(pairs, k+": "+FormatValue(el))
		}
		switch len(pairs) {
		case 0:
			return "{ }"
		case 1:
			return pairs[0]
		}
		return "{ " + strings.Join(pairs, ", ") + " }"
	}
	return ""
}

// formatString leaves word-only text bare and single-quotes anything else,
// including text that would read back as a number or boolean.
func formatString(s string) string {
	if s != "" && isWord(s) && !grammar.IsNumeric(s) && s != "true" && s != "false" {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
