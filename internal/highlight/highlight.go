// Package highlight renders code blocks of the reference document
// into HTML with syntax highlighting.
package highlight

import (
	"bytes"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"

	"braces.dev/errtrace"
)

// Highlighter turns code into HTML.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	// Defaults to [PlainStyle].
	Style *chroma.Style

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		if h.Style == nil {
			h.Style = PlainStyle
		}
		h.formatter = chromahtml.New(
			chromahtml.WithClasses(false),
		)
	})
}

// Highlight renders the given source code into an HTML <pre> block.
// The language selects the lexer; unknown languages (including the
// Pipit pipeline language) fall back to plain text.
func (h *Highlighter) Highlight(lang, src string) (string, error) {
	h.init()

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	tokens, err := lexer.Tokenise(nil, src)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var buff bytes.Buffer
	if err := h.formatter.Format(&buff, h.Style, tokens); err != nil {
		return "", errtrace.Wrap(err)
	}
	return buff.String(), nil
}
