package md

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// FromHTML converts an HTML fragment back to markdown.
func FromHTML(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}
