package lyml

import "github.com/KimNorgaard/go-lyml/internal/lexer"

// Format parses data and renders it again, normalizing the spacing of
// values and inline collections. Lines are kept or dropped according to
// flags; with DumpEmptyLines|DumpComments every line survives.
//
// Unless a Newline option is given, the output keeps the line terminator
// detected in data.
func Format(data []byte, flags DumpFlag, opts ...Option) ([]byte, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}
	tokens, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	d, err := NewDumper(append([]Option{Newline(lexer.DetectNewline(data))}, opts...)...)
	if err != nil {
		return nil, err
	}
	return d.Dump(tokens, flags), nil
}
