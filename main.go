// actordoc generates the Pipit standard library reference
// from the annotated std_*.h runtime headers.
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"go.pipit.dev/actordoc/internal/errdefer"
	"go.pipit.dev/actordoc/internal/header"
	"go.pipit.dev/actordoc/internal/html"
	"go.pipit.dev/actordoc/internal/markdown"
)

var _version = "0.3.0"

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("actordoc: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, closerFunc(closeDebug))

	finder := header.Finder{Dir: opts.Include}
	if opts.Debug.Bool() {
		finder.DebugLog = log.New(debugw, "", 0)
	}

	gen := Generator{
		Out:      cmd.Stdout,
		Log:      cmd.log,
		Finder:   &finder,
		Scanner:  new(header.Scanner),
		Markdown: new(markdown.Renderer),
		Include:  opts.Include,
		OutFile:  opts.Output,
	}
	if opts.HTML {
		gen.HTML = new(html.Renderer)
	}

	return gen.Generate()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
