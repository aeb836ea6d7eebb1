package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/KimNorgaard/go-lyml"
)

// checkCommand validates many files concurrently.
type checkCommand struct {
	cfg         *globalConfig
	files       []string
	concurrency int
}

type checkResult struct {
	tokens int
	bytes  int64
	err    error
}

// Register the check command and its flags with the kingpin application.
func (c *checkCommand) Register(app *kingpin.Application, cfg *globalConfig) {
	c.cfg = cfg
	cmd := app.Command("check", "Validate LYML files and report the first error in each.").Action(c.run)
	cmd.Arg("files", "The LYML files to check.").Required().StringsVar(&c.files)
	cmd.Flag("concurrency", "How many files to parse at once.").Default("8").IntVar(&c.concurrency)
}

func (c *checkCommand) run(*kingpin.ParseContext) error {
	if c.concurrency < 1 {
		return fmt.Errorf("--concurrency must be positive, got %d", c.concurrency)
	}

	p, err := lyml.NewParser(c.cfg.options()...)
	if err != nil {
		return err
	}

	results := c.checkAll(context.Background(), p)

	var (
		failed int
		total  int64
	)
	for i, file := range c.files {
		res := results[i]
		if res.err != nil {
			failed++
			fmt.Fprintf(c.cfg.stdout, "FAIL\t%s\n", res.err)
			continue
		}
		total += res.bytes
		fmt.Fprintf(c.cfg.stdout, "ok\t%s\t%d tokens\n", file, res.tokens)
	}
	level.Info(c.cfg.Logger()).Log("msg", "checked files", "files", len(c.files), "failed", failed, "size", humanize.Bytes(uint64(total)))

	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(c.files))
	}
	return nil
}

// checkAll parses every file, at most c.concurrency at a time. Parse errors
// are recorded per file rather than cancelling the group.
func (c *checkCommand) checkAll(ctx context.Context, p *lyml.Parser) []checkResult {
	results := make([]checkResult, len(c.files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, file := range c.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].err = err
				return nil
			}
			level.Debug(c.cfg.Logger()).Log("msg", "checking file", "path", file)

			tokens, err := p.ParseFile(file)
			if err != nil {
				results[i].err = err
				return nil
			}
			results[i].tokens = len(tokens)
			if info, err := c.cfg.fs.Stat(file); err == nil {
				results[i].bytes = info.Size()
			}
			return nil
		})
	}
	// Every goroutine reports through results.
	_ = g.Wait()
	return results
}
