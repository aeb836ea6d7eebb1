package lyml

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"

	"github.com/KimNorgaard/go-lyml/errors"
	"github.com/KimNorgaard/go-lyml/internal/dumper"
	"github.com/KimNorgaard/go-lyml/internal/parser"
	"github.com/KimNorgaard/go-lyml/token"
)

// Parser reads LYML documents into tokens. A Parser keeps no state between
// calls and is safe for concurrent use.
type Parser struct {
	engine *parser.Parser
	fs     afero.Fs
	logger log.Logger
}

// NewParser returns a parser configured by opts.
func NewParser(opts ...Option) (*Parser, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	engine, err := parser.New(o.indent, o.newline)
	if err != nil {
		return nil, err
	}
	return &Parser{engine: engine, fs: o.fs, logger: o.logger}, nil
}

// Parse returns one token per line of data. On error no tokens are returned.
func (p *Parser) Parse(data []byte) ([]token.Token, error) {
	return p.engine.Parse(data)
}

// ParseFile reads the file at path and parses its contents. Errors name the
// file.
func (p *Parser) ParseFile(path string) ([]token.Token, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, &ParseError{Kind: errors.FileNotFound, Message: "file does not exist", File: path}
		}
		return nil, &ParseError{Kind: errors.FileUnreadable, Message: "file cannot be read", File: path, Err: err}
	}
	if info.IsDir() {
		return nil, &ParseError{Kind: errors.FileNotFound, Message: "file does not exist", File: path}
	}

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, &ParseError{Kind: errors.FileUnreadable, Message: "file cannot be read", File: path, Err: err}
	}
	level.Debug(p.logger).Log("msg", "parsing file", "path", path, "bytes", len(data))

	tokens, err := p.engine.Parse(data)
	if err != nil {
		var perr *ParseError
		if stderrors.As(err, &perr) {
			return nil, perr.WithFile(path)
		}
		return nil, err
	}
	return tokens, nil
}

// Dumper renders tokens back to LYML text.
type Dumper struct {
	newline string
	fs      afero.Fs
	logger  log.Logger
}

// NewDumper returns a dumper configured by opts.
func NewDumper(opts ...Option) (*Dumper, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Dumper{newline: o.newline, fs: o.fs, logger: o.logger}, nil
}

// Dump renders tokens. Blank and comment-only tokens are written only when
// flags ask for them.
func (d *Dumper) Dump(tokens []token.Token, flags DumpFlag) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = dumper.New(&buf, d.newline, flags).Dump(tokens)
	return buf.Bytes()
}

// DumpFile renders tokens into the file at path, replacing its contents.
func (d *Dumper) DumpFile(path string, tokens []token.Token, flags DumpFlag) error {
	data := d.Dump(tokens, flags)
	if err := afero.WriteFile(d.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("lyml: write %s: %w", path, err)
	}
	level.Debug(d.logger).Log("msg", "dumped file", "path", path, "tokens", len(tokens), "bytes", len(data))
	return nil
}

// Parse parses data with a parser configured by opts.
func Parse(data []byte, opts ...Option) ([]token.Token, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}

// ParseFile parses the file at path with a parser configured by opts.
func ParseFile(path string, opts ...Option) ([]token.Token, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseFile(path)
}

// Dump renders tokens with a dumper configured by opts.
func Dump(tokens []token.Token, flags DumpFlag, opts ...Option) ([]byte, error) {
	d, err := NewDumper(opts...)
	if err != nil {
		return nil, err
	}
	return d.Dump(tokens, flags), nil
}

// DumpFile renders tokens into the file at path with a dumper configured by
// opts.
func DumpFile(path string, tokens []token.Token, flags DumpFlag, opts ...Option) error {
	d, err := NewDumper(opts...)
	if err != nil {
		return err
	}
	return d.DumpFile(path, tokens, flags)
}
