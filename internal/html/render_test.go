package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.pipit.dev/actordoc/internal/header"
	"golang.org/x/net/html"
)

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	recs := []*header.Record{
		{
			Name:      "add",
			Group:     "Basic Arithmetic Actors",
			Brief:     "Addition",
			InType:    "int32",
			InCount:   "2",
			OutType:   "int32",
			OutCount:  "1",
			Signature: "ACTOR(add, IN(int32, 2), OUT(int32, 1))",
			Params: []header.Param{
				{Name: "a", Desc: "first operand"},
			},
			Returns: "the sum",
			Example: []string{":a | add(:b)"},
		},
		{
			Name:      "null_sink",
			Brief:     "Discards its input",
			InType:    "f32",
			InCount:   "N",
			OutType:   "void",
			OutCount:  "0",
			Signature: "ACTOR(null_sink, IN(f32, N), OUT(void, 0))",
		},
	}

	var buff bytes.Buffer
	require.NoError(t, new(Renderer).RenderDocument(&buff, recs))

	doc, err := html.Parse(&buff)
	require.NoError(t, err)

	t.Run("title", func(t *testing.T) {
		title := querySelector(doc, "title")
		require.NotNil(t, title)
		assert.Equal(t, "Pipit Standard Library Reference", text(title))
	})

	t.Run("quick reference rows", func(t *testing.T) {
		rows := querySelectorAll(doc, "table#quick-reference tbody tr")
		require.Len(t, rows, 2)

		cells := querySelectorAll(rows[0], "td")
		require.Len(t, cells, 4)
		assert.Equal(t, "add", text(cells[0]))
		assert.Equal(t, "int32[2]", text(cells[1]))
		assert.Equal(t, "int32[1]", text(cells[2]))
		assert.Equal(t, "Addition", text(cells[3]))

		cells = querySelectorAll(rows[1], "td")
		require.Len(t, cells, 4)
		assert.Equal(t, "void", text(cells[2]))
	})

	t.Run("sections", func(t *testing.T) {
		var names []string
		for _, h3 := range querySelectorAll(doc, "section h3") {
			names = append(names, text(h3))
		}
		assert.Equal(t, []string{"add", "null_sink"}, names)
	})

	t.Run("highlighted code", func(t *testing.T) {
		sec := querySelector(doc, "section#add")
		require.NotNil(t, sec)

		pres := querySelectorAll(sec, "pre")
		require.Len(t, pres, 2, "want signature and example blocks")
		assert.Contains(t, text(pres[0]), "ACTOR(add")
		assert.Contains(t, text(pres[1]), ":a | add(:b)")
	})

	t.Run("optional parts omitted", func(t *testing.T) {
		sec := querySelector(doc, "section#null_sink")
		require.NotNil(t, sec)

		assert.Empty(t, querySelectorAll(sec, "ul"))
		require.Len(t, querySelectorAll(sec, "pre"), 1, "signature only")
	})
}

func TestRenderDocument_customTitle(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	r := Renderer{Title: "My Actors"}
	require.NoError(t, r.RenderDocument(&buff, nil))

	doc, err := html.Parse(&buff)
	require.NoError(t, err)

	h1 := querySelector(doc, "h1")
	require.NotNil(t, h1)
	assert.Equal(t, "My Actors", text(h1))
}

func querySelector(n *html.Node, sel string) *html.Node {
	return cascadia.Query(n, cascadia.MustCompile(sel))
}

func querySelectorAll(n *html.Node, sel string) []*html.Node {
	return cascadia.QueryAll(n, cascadia.MustCompile(sel))
}

func text(n *html.Node) string {
	var sb strings.Builder
	for c := range n.Descendants() {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}
