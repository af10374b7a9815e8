// html.go renders elements to HTML fragments.
package md

import (
	"strconv"
	"strings"
)

// HTML renders e as a single HTML fragment. Text is inserted verbatim; use
// EscapeElements first when the source is untrusted.
func (e Element) HTML() string {
	var sb strings.Builder
	e.writeHTML(&sb)
	return sb.String()
}

func (e Element) writeHTML(sb *strings.Builder) {
	switch e.Type {
	case ElementHeader:
		level := strconv.Itoa(e.Level)
		sb.WriteString("<h" + level + ">")
		sb.WriteString(e.Text)
		sb.WriteString("</h" + level + ">")
	case ElementList:
		sb.WriteString("<ul>")
		for _, item := range e.Items {
			sb.WriteString("<li>")
			sb.WriteString(item)
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
	case ElementParagraph:
		wrap(sb, "p", e.Text)
	case ElementBold:
		wrap(sb, "b", e.Text)
	case ElementItalic:
		wrap(sb, "i", e.Text)
	case ElementLink:
		sb.WriteString(`<a href="`)
		sb.WriteString(e.URL)
		sb.WriteString(`">`)
		sb.WriteString(e.Text)
		sb.WriteString(`</a>`)
	case ElementImage:
		sb.WriteString(`<img src="`)
		sb.WriteString(e.URL)
		sb.WriteString(`" alt="`)
		sb.WriteString(e.Text)
		sb.WriteString(`" />`)
	case ElementCode:
		wrap(sb, "code", e.Text)
	case ElementCodeBlock:
		sb.WriteString("<pre><code>")
		sb.WriteString(e.Text)
		sb.WriteString("</code></pre>")
	case ElementQuote:
		wrap(sb, "blockquote", e.Text)
	case ElementHorizontalRule:
		sb.WriteString("<hr />")
	}
}

func wrap(sb *strings.Builder, tag, text string) {
	sb.WriteString("<" + tag + ">")
	sb.WriteString(text)
	sb.WriteString("</" + tag + ">")
}

// Render concatenates the fragments of elements in order, with no separators.
func Render(elements []Element) string {
	var sb strings.Builder
	for _, e := range elements {
		e.writeHTML(&sb)
	}
	return sb.String()
}

// ToHTML parses source and renders the result.
func ToHTML(source string) string {
	return Render(Parse(source))
}
