// engine.go selects between the one-pass parser and goldmark.
package md

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors for conversion.
var (
	ErrUnknownEngine = errors.New("unknown markdown engine")
	ErrConversion    = errors.New("markdown conversion failed")
)

// Engine names a markdown to HTML implementation.
type Engine string

const (
	// EngineNative is the flat one-pass parser in this package.
	EngineNative Engine = "native"
	// EngineGoldmark is goldmark with GFM and highlighted code blocks.
	EngineGoldmark Engine = "goldmark"
)

// Engines returns the valid engine names.
func Engines() []string {
	return []string{string(EngineNative), string(EngineGoldmark)}
}

// ParseEngine validates an engine name. An empty name selects EngineNative.
func ParseEngine(name string) (Engine, error) {
	switch Engine(name) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	}
	return "", fmt.Errorf("%w: %q (valid: native, goldmark)", ErrUnknownEngine, name)
}

// ConvertOptions configures Convert.
type ConvertOptions struct {
	Engine Engine
	// EscapeHTML escapes source text so raw HTML in it cannot reach the output.
	EscapeHTML bool
}

func newGoldmark(rendererOpts ...renderer.Option) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(append([]renderer.Option{gmhtml.WithXHTML()}, rendererOpts...)...),
	)
}

var (
	// goldmark drops raw HTML unless told otherwise; the unsafe instance
	// matches the native engine, which passes text through untouched.
	goldmarkSafe   = newGoldmark()
	goldmarkUnsafe = newGoldmark(gmhtml.WithUnsafe())
)

// Convert renders markdown source to HTML with the selected engine.
func Convert(source string, opts ConvertOptions) (string, error) {
	switch opts.Engine {
	case "", EngineNative:
		elements := Parse(source)
		if opts.EscapeHTML {
			elements = EscapeElements(elements)
		}
		return Render(elements), nil
	case EngineGoldmark:
		gm := goldmarkUnsafe
		if opts.EscapeHTML {
			gm = goldmarkSafe
		}
		var buf bytes.Buffer
		if err := gm.Convert([]byte(source), &buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrConversion, err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, opts.Engine)
	}
}
