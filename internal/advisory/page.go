package advisory

import (
	"html"
	"strings"
)

// Page wraps an HTML fragment in a complete document. css, when set, is
// placed in a <style> element in the head.
func Page(title, fragment, css string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	if css != "" {
		sb.WriteString("<style>\n" + css + "</style>\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(fragment)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}
