// Package advisory renders service advisories as HTML.
package advisory

import (
	"fmt"
	"html"
	"strings"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

// Advisory bodies use "* " and "** " for bullets; both become list items.
var bulletPrefixes = []string{"** ", "* "}

// NormalizeBody rewrites advisory bullet lines as "- " list items so the
// markdown parser sees a list rather than an unclosed bold span.
func NormalizeBody(body string) string {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				lines[i] = "- " + strings.TrimPrefix(trimmed, prefix)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// BodyHTML converts one advisory body to HTML.
func BodyHTML(a api.ServiceAdvisory, opts md.ConvertOptions) (string, error) {
	out, err := md.Convert(NormalizeBody(a.Body), opts)
	if err != nil {
		return "", fmt.Errorf("advisory %d: %w", a.Key, err)
	}
	return out, nil
}

// FormatHTML renders advisories as collapsible <details> blocks separated by
// horizontal rules, in the order given.
func FormatHTML(advisories []api.ServiceAdvisory, opts md.ConvertOptions) (string, error) {
	var sb strings.Builder
	for _, a := range advisories {
		body, err := BodyHTML(a, opts)
		if err != nil {
			return "", err
		}

		title := a.Title
		if opts.EscapeHTML {
			title = html.EscapeString(title)
		}

		sb.WriteString(`<details class="advisory">`)
		sb.WriteString(`<summary class="advisory-summary">`)
		sb.WriteString(title)
		sb.WriteString(`</summary>`)
		sb.WriteString(body)
		sb.WriteString(`</details>`)
		sb.WriteString(`<hr>`)
	}
	return sb.String(), nil
}

// Summary returns the first line of an advisory body as plain text, with
// inline markup removed.
func Summary(a api.ServiceAdvisory) string {
	for _, line := range strings.Split(NormalizeBody(a.Body), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return plainText(md.Parse(line))
	}
	return ""
}

// plainText joins element text with single spaces. The scanner drops the
// blank that follows a closing span marker, so spacing is rebuilt here.
func plainText(elements []md.Element) string {
	var parts []string
	for _, e := range elements {
		var text string
		switch e.Type {
		case md.ElementList:
			text = strings.Join(e.Items, "; ")
		case md.ElementHorizontalRule, md.ElementImage:
			continue
		default:
			text = e.Text
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}

	var sb strings.Builder
	for i, part := range parts {
		if i > 0 && !strings.ContainsRune(".,;:!?)", rune(part[0])) {
			sb.WriteByte(' ')
		}
		sb.WriteString(part)
	}
	return sb.String()
}
