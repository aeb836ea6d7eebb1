package lyml

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-lyml/token"
)

// Decoder reads an LYML document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and returns its tokens.
//
// Note: This is a non-streaming implementation. Indentation is validated
// against earlier lines, so the entire reader is consumed before parsing.
func (d *Decoder) Decode() ([]token.Token, error) {
	if d.r == nil {
		return nil, fmt.Errorf("lyml: Decode(nil reader)")
	}
	p, err := NewParser(d.opts...)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}
