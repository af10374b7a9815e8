package advisory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "double star bullets",
			input:    "Closed stops:\n** 10064\n** 10065",
			expected: "Closed stops:\n- 10064\n- 10065",
		},
		{
			name:     "single star bullets with indent",
			input:    "  * one\r\n* two",
			expected: "- one\n- two",
		},
		{
			name:     "bold text untouched",
			input:    "*Effective immediately*",
			expected: "*Effective immediately*",
		},
		{
			name:     "dash bullets untouched",
			input:    "- already a list",
			expected: "- already a list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeBody(tt.input))
		})
	}
}

func TestFormatHTML(t *testing.T) {
	advisories := []api.ServiceAdvisory{
		{Key: 1, Title: "Route 15 Detour", Body: "Detour on *Mountain*.\n** Stop 10064 closed"},
		{Key: 2, Title: "Holiday hours", Body: "Sunday service."},
	}

	got, err := FormatHTML(advisories, md.ConvertOptions{})
	require.NoError(t, err)

	expected := `<details class="advisory"><summary class="advisory-summary">Route 15 Detour</summary>` +
		`<p>Detour on </p><b>Mountain</b><p>.</p><ul><li>Stop 10064 closed</li></ul></details><hr>` +
		`<details class="advisory"><summary class="advisory-summary">Holiday hours</summary>` +
		`<p>Sunday service.</p></details><hr>`
	assert.Equal(t, expected, got)
}

func TestFormatHTML_Empty(t *testing.T) {
	got, err := FormatHTML(nil, md.ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFormatHTML_EscapesTitleAndBody(t *testing.T) {
	advisories := []api.ServiceAdvisory{
		{Key: 3, Title: "<script>x</script>", Body: "<b>raw</b>"},
	}

	got, err := FormatHTML(advisories, md.ConvertOptions{EscapeHTML: true})
	require.NoError(t, err)

	assert.Contains(t, got, "&lt;script&gt;x&lt;/script&gt;")
	assert.Contains(t, got, "<p>&lt;b&gt;raw&lt;/b&gt;</p>")
	assert.NotContains(t, got, "<script>")
}

func TestFormatHTML_Goldmark(t *testing.T) {
	advisories := []api.ServiceAdvisory{
		{Key: 4, Title: "Detour", Body: "** one\n** two\n"},
	}

	got, err := FormatHTML(advisories, md.ConvertOptions{Engine: md.EngineGoldmark})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, `<details class="advisory">`))
	assert.Contains(t, got, "<li>one</li>")
	assert.Contains(t, got, "<li>two</li>")
}

func TestFormatHTML_UnknownEngine(t *testing.T) {
	advisories := []api.ServiceAdvisory{{Key: 9, Title: "x", Body: "y"}}

	_, err := FormatHTML(advisories, md.ConvertOptions{Engine: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, md.ErrUnknownEngine)
	assert.Contains(t, err.Error(), "advisory 9")
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"plain", "Route 15 is delayed.\nMore text.", "Route 15 is delayed."},
		{"strips markup", "Detour via *Mountain Avenue* and `Main`.", "Detour via Mountain Avenue and Main."},
		{"skips blank lines", "\n\n  \nSecond line", "Second line"},
		{"bullet first", "** Stop closed", "Stop closed"},
		{"link text kept", "See [the map](https://x.example)", "See the map"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summary(api.ServiceAdvisory{Body: tt.body}))
		})
	}
}
