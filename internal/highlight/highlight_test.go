package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		lang string
		src  string
		want string
	}{
		{
			desc: "cpp",
			lang: "cpp",
			src:  "ACTOR(add, IN(int32, 2), OUT(int32, 1))",
			want: "ACTOR",
		},
		{
			desc: "unknown language falls back to plain text",
			lang: "pdl",
			src:  "src | mul(2.5) | sink",
			want: "mul",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := new(Highlighter).Highlight(tt.lang, tt.src)
			require.NoError(t, err)
			assert.Contains(t, got, "<pre")
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestHighlighter_defaultStyle(t *testing.T) {
	t.Parallel()

	var h Highlighter
	_, err := h.Highlight("cpp", "int x;")
	require.NoError(t, err)
	assert.Same(t, PlainStyle, h.Style)
}
