// Command lyml inspects and formats LYML files.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"
)

const version = "0.1.0"

func main() {
	app := newApp(&globalConfig{fs: afero.NewOsFs(), stdout: os.Stdout, stderr: os.Stderr})
	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(cfg *globalConfig) *kingpin.Application {
	app := kingpin.New("lyml", "Inspect and format LYML files.")
	app.Version(version)
	app.Terminate(nil)
	app.ErrorWriter(cfg.stderr)
	app.UsageWriter(cfg.stderr)

	// Register the global flags first so their PreAction runs before the
	// commands' actions.
	cfg.Register(app)

	var (
		tokens tokensCommand
		format fmtCommand
		check  checkCommand
	)
	tokens.Register(app, cfg)
	format.Register(app, cfg)
	check.Register(app, cfg)
	return app
}
