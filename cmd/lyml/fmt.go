package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/KimNorgaard/go-lyml"
)

// fmtCommand re-renders a file through the dumper.
type fmtCommand struct {
	cfg        *globalConfig
	file       string
	write      bool
	comments   bool
	emptyLines bool
}

// Register the fmt command and its flags with the kingpin application.
func (c *fmtCommand) Register(app *kingpin.Application, cfg *globalConfig) {
	c.cfg = cfg
	cmd := app.Command("fmt", "Rewrite an LYML file in canonical form.").Action(c.run)
	cmd.Arg("file", "The LYML file to format.").Required().StringVar(&c.file)
	cmd.Flag("write", "Write the result back to the file instead of stdout.").Short('w').BoolVar(&c.write)
	cmd.Flag("comments", "Keep comments.").Default("true").BoolVar(&c.comments)
	cmd.Flag("empty-lines", "Keep blank lines.").Default("true").BoolVar(&c.emptyLines)
}

func (c *fmtCommand) run(*kingpin.ParseContext) error {
	var flags lyml.DumpFlag
	if c.comments {
		flags |= lyml.DumpComments
	}
	if c.emptyLines {
		flags |= lyml.DumpEmptyLines
	}

	opts := c.cfg.options()
	tokens, err := lyml.ParseFile(c.file, opts...)
	if err != nil {
		return err
	}

	if !c.write {
		out, err := lyml.Dump(tokens, flags, opts...)
		if err != nil {
			return err
		}
		_, err = c.cfg.stdout.Write(out)
		return err
	}

	if err := lyml.DumpFile(c.file, tokens, flags, opts...); err != nil {
		return errors.Wrapf(err, "format %s", c.file)
	}
	level.Info(c.cfg.Logger()).Log("msg", "formatted file", "path", c.file, "tokens", len(tokens))
	return nil
}
