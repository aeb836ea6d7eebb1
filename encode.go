package lyml

import (
	"io"

	"github.com/KimNorgaard/go-lyml/internal/dumper"
	"github.com/KimNorgaard/go-lyml/token"
)

// Encoder writes tokens to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the LYML rendering of tokens to the stream.
func (e *Encoder) Encode(tokens []token.Token, flags DumpFlag) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	return dumper.New(e.w, o.newline, flags).Dump(tokens)
}
