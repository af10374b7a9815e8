package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "  \n ",
			expected: "",
		},
		{
			name:     "paragraph with strong",
			input:    "<p>This is <strong>bold</strong> text</p>",
			expected: "This is **bold** text",
		},
		{
			name:     "header",
			input:    "<h1>Title</h1>",
			expected: "# Title",
		},
		{
			name:     "list",
			input:    "<ul><li>Item 1</li><li>Item 2</li></ul>",
			expected: "- Item 1\n- Item 2",
		},
		{
			name:     "link",
			input:    `<a href="https://google.com">Google</a>`,
			expected: "[Google](https://google.com)",
		},
		{
			name:     "code block",
			input:    "<pre><code>code here</code></pre>",
			expected: "```\ncode here\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromHTML_RoundTrip(t *testing.T) {
	inputs := []string{
		"# Service Alert",
		"- one\n- two",
		"[Transit](https://winnipegtransit.com)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			back, err := FromHTML(ToHTML(input))
			require.NoError(t, err)
			assert.Equal(t, Parse(input), Parse(back))
		})
	}
}
