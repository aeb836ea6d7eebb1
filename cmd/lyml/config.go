package main

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"

	"github.com/KimNorgaard/go-lyml"
)

// globalConfig holds the flags shared by every command and the environment
// the commands run against.
type globalConfig struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	indent   int
	newline  string
	logLevel string

	logger log.Logger
}

// Register global flags with the kingpin application.
func (c *globalConfig) Register(app *kingpin.Application) {
	app.Flag("indent", "Indentation width, in spaces.").
		Envar("LYML_INDENT").Default("2").IntVar(&c.indent)
	app.Flag("newline", "Line terminator: auto reads lf, crlf and mixed input and writes lf.").
		Envar("LYML_NEWLINE").Default("auto").EnumVar(&c.newline, "auto", "lf", "crlf")
	app.Flag("log.level", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]").
		Default("info").EnumVar(&c.logLevel, "debug", "info", "warn", "error")

	app.PreAction(c.setupLogger)
}

func (c *globalConfig) setupLogger(*kingpin.ParseContext) error {
	var filter level.Option
	switch c.logLevel {
	case "debug":
		filter = level.AllowDebug()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		filter = level.AllowInfo()
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(c.stderr))
	logger = level.NewFilter(logger, filter)
	c.logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return nil
}

// Logger returns the configured logger, or a no-op logger before setup.
func (c *globalConfig) Logger() log.Logger {
	if c.logger == nil {
		return log.NewNopLogger()
	}
	return c.logger
}

// options translates the global flags into library options.
func (c *globalConfig) options() []lyml.Option {
	opts := []lyml.Option{
		lyml.Indent(c.indent),
		lyml.WithFs(c.fs),
		lyml.WithLogger(c.Logger()),
	}
	switch c.newline {
	case "lf":
		opts = append(opts, lyml.Newline("\n"))
	case "crlf":
		opts = append(opts, lyml.Newline("\r\n"))
	}
	return opts
}
