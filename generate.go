package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"go.pipit.dev/actordoc/internal/errdefer"
	"go.pipit.dev/actordoc/internal/header"
	"go.pipit.dev/actordoc/internal/html"
	"go.pipit.dev/actordoc/internal/markdown"
)

// Finder searches for standard library headers on-disk.
type Finder interface {
	FindHeaders() ([]*header.Ref, error)
}

var _ Finder = (*header.Finder)(nil)

// Scanner loads a header from disk
// and extracts its documented actor records.
type Scanner interface {
	ScanHeader(*header.Ref) ([]*header.Record, error)
}

var _ Scanner = (*header.Scanner)(nil)

// Renderer writes a reference document for a record collection.
type Renderer interface {
	RenderDocument(io.Writer, []*header.Record) error
}

var (
	_ Renderer = (*markdown.Renderer)(nil)
	_ Renderer = (*html.Renderer)(nil)
)

// Fatal conditions for a whole run.
// All other anomalies in the headers are absorbed by the scanner,
// which just emits fewer records for them.
var (
	errNoHeaders = errors.New("no std_*.h headers found")
	errNoRecords = errors.New("no documented actors found")
)

// Generator produces the standard library reference document.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	// Progress output for the user; == os.Stdout.
	Out io.Writer

	Log *log.Logger

	Finder  Finder
	Scanner Scanner

	// Markdown renders the primary output document.
	Markdown Renderer

	// HTML, if non-nil, renders an HTML version of the document
	// next to the markdown output.
	HTML Renderer

	// Include is the directory the Finder searches.
	// Used only for error reporting.
	Include string

	// OutFile is the path of the markdown document.
	OutFile string
}

// Generate scans all headers and writes the reference document.
//
// Headers are scanned independently in file-name order;
// the combined record collection keeps each header's records
// in their source order.
func (g *Generator) Generate() error {
	refs, err := g.Finder.FindHeaders()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if len(refs) == 0 {
		return errtrace.Wrap(fmt.Errorf("%w in %v", errNoHeaders, g.Include))
	}

	var records []*header.Record
	for _, ref := range refs {
		recs, err := g.Scanner.ScanHeader(ref)
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("scan %v: %w", ref.Name, err))
		}
		records = append(records, recs...)
		if len(recs) > 0 {
			fmt.Fprintf(g.Out, "  %v: %v actors\n", ref.Name, len(recs))
		}
	}
	if len(records) == 0 {
		return errtrace.Wrap(fmt.Errorf("%w in any std_*.h header", errNoRecords))
	}

	if err := g.writeDocument(g.Markdown, g.OutFile, records); err != nil {
		return err
	}

	if g.HTML != nil {
		htmlFile := strings.TrimSuffix(g.OutFile, filepath.Ext(g.OutFile)) + ".html"
		if err := g.writeDocument(g.HTML, htmlFile, records); err != nil {
			return err
		}
		g.Log.Printf("Rendered HTML copy %v", htmlFile)
	}

	fmt.Fprintf(g.Out, "Generated %v (%v actors from %v headers)\n",
		g.OutFile, len(records), len(refs))
	return nil
}

func (g *Generator) writeDocument(r Renderer, path string, records []*header.Record) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errtrace.Wrap(err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(r.RenderDocument(f, records))
}
