package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.pipit.dev/actordoc/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// Default locations, relative to the project root.
const (
	_defaultInclude = "runtime/libpipit/include"
	_defaultOutput  = "doc/spec/standard-library-spec-v0.3.0.md"
)

// params holds all arguments for actordoc.
type params struct {
	version bool
	help    Help

	Include string
	Output  string
	HTML    bool
	Debug   flagvalue.FileSwitch
}

// cliParser parses the command line arguments for actordoc.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("actordoc", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	fset.StringVar(&p.Include, "include", _defaultInclude, "")
	fset.StringVar(&p.Output, "out", _defaultOutput, "")

	// Document output:
	fset.BoolVar(&p.HTML, "html", false, "")

	// Program-level:
	fset.String("config", "", "") // consumed by ff
	fset.Var(&p.Debug, "debug", "")
	fset.BoolVar(&p.version, "version", false, "")
	fset.Var(&p.help, "help", "")
	fset.Var(&p.help, "h", "")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	err := ff.Parse(fset, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return nil, err
	}

	if p.version {
		fmt.Fprintln(cmd.Stdout, "actordoc", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && fset.NArg() > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(fset.Arg(0)); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if fset.NArg() > 0 {
		fmt.Fprintf(cmd.Stderr, "unexpected argument %q\n", fset.Arg(0))
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}
