// Package html renders the reference document as a standalone HTML page.
package html

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.pipit.dev/actordoc/internal/header"
	"go.pipit.dev/actordoc/internal/highlight"
	"go.pipit.dev/actordoc/internal/markdown"
)

//go:embed tmpl/reference.html
var _tmplFS embed.FS

var _referenceTmpl = template.Must(
	template.New("reference.html").ParseFS(_tmplFS, "tmpl/reference.html"),
)

const _defaultTitle = "Pipit Standard Library Reference"

// Highlighter renders code blocks into HTML.
type Highlighter interface {
	Highlight(lang, src string) (string, error)
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer renders the reference document into HTML.
type Renderer struct {
	// Title of the generated page.
	// Defaults to the standard library reference title.
	Title string

	// Highlighter renders code blocks into HTML.
	// Defaults to a plain-style Chroma highlighter.
	Highlighter Highlighter
}

type page struct {
	Title  string
	Rows   []row
	Groups []group
}

type row struct {
	Name  string
	In    string
	Out   string
	Brief string
}

type group struct {
	Name   string
	Actors []actor
}

type actor struct {
	Name        string
	Brief       string
	Description string
	Signature   template.HTML
	Params      []header.Param
	Returns     string
	Example     template.HTML
}

// RenderDocument renders the full HTML document for the given records.
// It mirrors the markdown document's structure:
// a quick-reference table in input order,
// then per-record sections grouped in first-seen group order.
func (r *Renderer) RenderDocument(w io.Writer, records []*header.Record) error {
	hl := r.Highlighter
	if hl == nil {
		hl = new(highlight.Highlighter)
	}

	title := r.Title
	if title == "" {
		title = _defaultTitle
	}

	p := page{Title: title}
	for _, rec := range records {
		p.Rows = append(p.Rows, row{
			Name:  rec.Name,
			In:    markdown.Wire(rec.InType, rec.InCount),
			Out:   markdown.Wire(rec.OutType, rec.OutCount),
			Brief: rec.Brief,
		})
	}

	for _, g := range markdown.GroupRecords(records) {
		grp := group{Name: g.Name}
		for _, rec := range g.Records {
			a, err := buildActor(hl, rec)
			if err != nil {
				return errtrace.Wrap(err)
			}
			grp.Actors = append(grp.Actors, a)
		}
		p.Groups = append(p.Groups, grp)
	}

	return errtrace.Wrap(_referenceTmpl.Execute(w, &p))
}

func buildActor(hl Highlighter, rec *header.Record) (actor, error) {
	sig, err := hl.Highlight("cpp", rec.Signature)
	if err != nil {
		return actor{}, errtrace.Wrap(err)
	}

	a := actor{
		Name:        rec.Name,
		Brief:       rec.Brief,
		Description: strings.TrimSpace(strings.Join(rec.Description, " ")),
		Signature:   template.HTML(sig),
		Params:      rec.Params,
		Returns:     rec.Returns,
	}

	if len(rec.Example) > 0 {
		ex, err := hl.Highlight("pdl", strings.Join(rec.Example, "\n"))
		if err != nil {
			return actor{}, errtrace.Wrap(err)
		}
		a.Example = template.HTML(ex)
	}
	return a, nil
}
