package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_HTML(t *testing.T) {
	tests := []struct {
		name     string
		element  Element
		expected string
	}{
		{"header", Header(2, "Detours"), "<h2>Detours</h2>"},
		{"list", List("a", "b"), "<ul><li>a</li><li>b</li></ul>"},
		{"empty list", List(), "<ul></ul>"},
		{"paragraph", Paragraph("hi"), "<p>hi</p>"},
		{"bold", Bold("x"), "<b>x</b>"},
		{"italic", Italic("x"), "<i>x</i>"},
		{"link", Link("t", "u"), `<a href="u">t</a>`},
		{"image", Image("alt", "pic.png"), `<img src="pic.png" alt="alt" />`},
		{"code", Code("x := 1"), "<code>x := 1</code>"},
		{"code block", CodeBlock("a\nb"), "<pre><code>a\nb</code></pre>"},
		{"quote", Quote("q"), "<blockquote>q</blockquote>"},
		{"horizontal rule", HorizontalRule(), "<hr />"},
		{"text is not escaped", Paragraph("<script>"), "<p><script></p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.element.HTML())
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Render(nil))
	})

	t.Run("concatenates without separators", func(t *testing.T) {
		elements := []Element{Header(1, "A"), Paragraph("b"), HorizontalRule()}
		assert.Equal(t, "<h1>A</h1><p>b</p><hr />", Render(elements))
	})

	t.Run("render is a concatenation of parts", func(t *testing.T) {
		a := []Element{Bold("x"), Code("y")}
		b := []Element{List("z"), Quote("w")}
		assert.Equal(t, Render(a)+Render(b), Render(append(append([]Element{}, a...), b...)))
	})

	t.Run("deterministic", func(t *testing.T) {
		elements := Parse("# T\n- a\n- b\n[l](u)\n")
		assert.Equal(t, Render(elements), Render(elements))
	})
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "header and paragraph",
			input:    "# Service Alert\nRoute 15 is delayed.\n",
			expected: "<h1>Service Alert</h1><p>Route 15 is delayed.</p>",
		},
		{
			name:     "list",
			input:    "- one\n- two\n",
			expected: "<ul><li>one</li><li>two</li></ul>",
		},
		{
			name:     "inline spans",
			input:    "This is *bold* text",
			expected: "<p>This is </p><b>bold</b><p>text</p>",
		},
		{
			name:     "link",
			input:    "[Transit](https://winnipegtransit.com)",
			expected: `<a href="https://winnipegtransit.com">Transit</a>`,
		},
		{
			name:     "code block",
			input:    "```\nx\n```",
			expected: "<pre><code>x</code></pre>",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToHTML(tt.input))
		})
	}
}
