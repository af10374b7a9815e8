package advisory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	got := Page("Alerts & Detours", "<p>x</p>", ".chroma { color: red }\n")

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<title>Alerts &amp; Detours</title>")
	assert.Contains(t, got, "<style>\n.chroma { color: red }\n</style>")
	assert.Contains(t, got, "<body>\n<p>x</p>\n</body>")
}

func TestPage_NoStyle(t *testing.T) {
	got := Page("t", "", "")
	assert.NotContains(t, got, "<style>")
}
