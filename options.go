package lyml

import (
	"github.com/go-kit/log"
	"github.com/spf13/afero"

	"github.com/KimNorgaard/go-lyml/errors"
	"github.com/KimNorgaard/go-lyml/internal/lexer"
	"github.com/KimNorgaard/go-lyml/internal/parser"
)

// Option configures a Parser, Dumper, Decoder or Encoder.
type Option func(*options) error

type options struct {
	indent  int
	newline string
	fs      afero.Fs
	logger  log.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		indent: parser.DefaultIndent,
		fs:     afero.NewOsFs(),
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent sets the indentation width, in spaces, that nested lines must use.
//
// The width n must be a positive integer. The default is 2.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return errors.New(errors.InvalidConfiguration, 0, "indentation must be greater than zero, got %d", n)
		}
		o.indent = n
		return nil
	}
}

// Newline sets the line terminator. Parsing splits lines on it and dumping
// ends every line with it. Only "\n" and "\r\n" are accepted.
//
// Without this option the parser splits on "\n" and drops the "\r" of CRLF
// lines, and the dumper writes "\n".
func Newline(nl string) Option {
	return func(o *options) error {
		if nl != lexer.LF && nl != lexer.CRLF {
			return errors.New(errors.InvalidConfiguration, 0, "unsupported newline %q", nl)
		}
		o.newline = nl
		return nil
	}
}

// WithFs sets the file system used by ParseFile and DumpFile.
func WithFs(fs afero.Fs) Option {
	return func(o *options) error {
		if fs == nil {
			return errors.New(errors.InvalidConfiguration, 0, "file system cannot be nil")
		}
		o.fs = fs
		return nil
	}
}

// WithLogger sets the logger that file operations report to.
func WithLogger(logger log.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		o.logger = logger
		return nil
	}
}
