// Package view provides output formatting for trail commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns the accepted --output values.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain)}
}

// ValidateFormat checks an --output value. Empty selects the table format.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q (valid: %s)", format, strings.Join(ValidFormats(), ", "))
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// RenderTable renders data as a table.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	if r.format == FormatJSON {
		r.renderTableAsJSON(headers, rows)
		return
	}

	if r.format == FormatPlain {
		r.renderTableAsPlain(headers, rows)
		return
	}

	widths := columnWidths(headers, rows)
	bold := color.New(color.Bold)
	r.writeRow(headers, widths, bold)
	for _, row := range rows {
		r.writeRow(row, widths, nil)
	}
}

// columnWidths returns the display width of the widest cell in each column.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(val))
			}
		}
	}
	return widths
}

func (r *Renderer) writeRow(cells []string, widths []int, c *color.Color) {
	var sb strings.Builder
	for i, val := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		// The last column is not padded.
		if i < len(widths) && i < len(cells)-1 {
			val = runewidth.FillRight(val, widths[i])
		}
		sb.WriteString(val)
	}
	if c != nil {
		c.Fprintln(r.writer, sb.String())
		return
	}
	fmt.Fprintln(r.writer, sb.String())
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	var result []map[string]string
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

func (r *Renderer) renderTableAsPlain(headers []string, rows [][]string) {
	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "\t")
			}
			fmt.Fprint(r.writer, val)
		}
		fmt.Fprintln(r.writer)
	}
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// RenderKeyValue renders a key-value pair.
func (r *Renderer) RenderKeyValue(key, value string) {
	if r.format == FormatJSON {
		fmt.Fprintf(r.writer, `{"%s": "%s"}`+"\n", key, value)
		return
	}
	bold := color.New(color.Bold)
	bold.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}

// Truncate shortens s to at most maxWidth terminal columns, ending with
// "..." when there is room for it. Wide runes count as two columns.
func Truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
