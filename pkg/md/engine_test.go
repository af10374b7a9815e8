package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Engine
		wantErr  bool
	}{
		{"empty is native", "", EngineNative, false},
		{"native", "native", EngineNative, false},
		{"goldmark", "goldmark", EngineGoldmark, false},
		{"unknown", "blackfriday", "", true},
		{"case sensitive", "Native", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEngine(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownEngine)
				assert.Contains(t, err.Error(), "valid: native, goldmark")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEngines(t *testing.T) {
	assert.Equal(t, []string{"native", "goldmark"}, Engines())
}

func TestConvert_Native(t *testing.T) {
	got, err := Convert("# Hi\n*there*", ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1><b>there</b>", got)

	got, err = Convert("<em>raw</em>", ConvertOptions{Engine: EngineNative, EscapeHTML: true})
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;em&gt;raw&lt;/em&gt;</p>", got)
}

func TestConvert_Goldmark(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		got, err := Convert("# Hi", ConvertOptions{Engine: EngineGoldmark})
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>\n", got)
	})

	t.Run("highlighted code uses classes", func(t *testing.T) {
		got, err := Convert("```go\nfunc main() {}\n```\n", ConvertOptions{Engine: EngineGoldmark})
		require.NoError(t, err)
		assert.Contains(t, got, `class="chroma"`)
		assert.NotContains(t, got, "style=")
	})

	t.Run("gfm table", func(t *testing.T) {
		got, err := Convert("| A | B |\n|---|---|\n| 1 | 2 |\n", ConvertOptions{Engine: EngineGoldmark})
		require.NoError(t, err)
		assert.Contains(t, got, "<table>")
		assert.Contains(t, got, "<td>1</td>")
	})

	t.Run("raw html passes when unescaped", func(t *testing.T) {
		got, err := Convert("<div>x</div>\n", ConvertOptions{Engine: EngineGoldmark})
		require.NoError(t, err)
		assert.Contains(t, got, "<div>x</div>")
	})

	t.Run("void elements are xhtml", func(t *testing.T) {
		got, err := Convert("a\n\n---\n", ConvertOptions{Engine: EngineGoldmark})
		require.NoError(t, err)
		assert.Contains(t, got, "<hr />")
	})

	t.Run("raw html omitted when escaping", func(t *testing.T) {
		got, err := Convert("<div>x</div>\n", ConvertOptions{Engine: EngineGoldmark, EscapeHTML: true})
		require.NoError(t, err)
		assert.NotContains(t, got, "<div>")
		assert.Contains(t, got, "raw HTML omitted")
	})
}

func TestConvert_UnknownEngine(t *testing.T) {
	_, err := Convert("x", ConvertOptions{Engine: "pandoc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEngine)
}
