package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeElements(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, EscapeElements(nil))
	})

	t.Run("escapes text url and items", func(t *testing.T) {
		in := []Element{
			Paragraph("<script>alert(1)</script>"),
			Link("a & b", `x" onclick="y`),
			List("<i>", "plain"),
		}

		out := EscapeElements(in)

		assert.Equal(t, []Element{
			Paragraph("&lt;script&gt;alert(1)&lt;/script&gt;"),
			Link("a &amp; b", "x&#34; onclick=&#34;y"),
			List("&lt;i&gt;", "plain"),
		}, out)
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := []Element{List("<b>"), Paragraph("<p>")}
		EscapeElements(in)

		assert.Equal(t, "<b>", in[0].Items[0])
		assert.Equal(t, "<p>", in[1].Text)
	})

	t.Run("keeps level and type", func(t *testing.T) {
		out := EscapeElements([]Element{Header(3, "a<b")})
		assert.Equal(t, Header(3, "a&lt;b"), out[0])
	})
}

func TestToSafeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw tags escaped",
			input:    "<b>not bold</b>",
			expected: "<p>&lt;b&gt;not bold&lt;/b&gt;</p>",
		},
		{
			name:     "attribute break escaped",
			input:    `[x](javascript:"a")`,
			expected: `<a href="javascript:&#34;a&#34;">x</a>`,
		},
		{
			name:     "plain text unchanged",
			input:    "# Title",
			expected: "<h1>Title</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSafeHTML(tt.input))
		})
	}
}
