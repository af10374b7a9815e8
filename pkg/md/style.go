package md

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle is returned for a highlighting style chroma does not know.
var ErrUnknownStyle = errors.New("unknown highlight style")

// DefaultStyle is the highlighting style used when none is given.
const DefaultStyle = "github"

// Styles returns the names of the available highlighting styles, sorted.
func Styles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stylesheet returns the CSS for the chroma classes the goldmark engine
// emits on highlighted code blocks.
func Stylesheet(name string) (string, error) {
	if name == "" {
		name = DefaultStyle
	}
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return sb.String(), nil
}
