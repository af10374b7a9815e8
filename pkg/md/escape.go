package md

import "html"

// EscapeElements returns copies of elements with all text, URLs, and list
// items HTML-escaped. The input slice is not modified.
func EscapeElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	for i, e := range elements {
		e.Text = html.EscapeString(e.Text)
		e.URL = html.EscapeString(e.URL)
		if e.Items != nil {
			items := make([]string, len(e.Items))
			for j, item := range e.Items {
				items[j] = html.EscapeString(item)
			}
			e.Items = items
		}
		out[i] = e
	}
	return out
}

// ToSafeHTML is ToHTML with every piece of source text escaped.
func ToSafeHTML(source string) string {
	return Render(EscapeElements(Parse(source)))
}
