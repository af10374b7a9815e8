package mdcmd

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/internal/view"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

type elementsOptions struct {
	strict  bool
	output  string
	noColor bool
	in      io.Reader
	out     io.Writer
}

// NewCmdElements creates the md elements command.
func NewCmdElements() *cobra.Command {
	opts := &elementsOptions{}

	cmd := &cobra.Command{
		Use:   "elements [file]",
		Short: "Show how the native parser reads a document",
		Long: `List the flat elements the native engine produces for a document.

Unclosed spans, links, and code fences are reported as warnings.
With --strict, any warning makes the command fail.`,
		Example: `  trail md elements notes.md
  trail md elements notes.md -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runElements(args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail if the document has parse warnings")

	return cmd
}

func runElements(args []string, opts *elementsOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	source, err := readInput(args, opts.in)
	if err != nil {
		return err
	}

	doc := parseQuietly(source)

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(writerOrStdout(opts.out))

	if opts.output == "json" {
		if err := renderer.RenderJSON(doc); err != nil {
			return err
		}
	} else if len(doc.Elements) == 0 {
		renderer.RenderText("No elements.")
	} else {
		headers := []string{"TYPE", "LEVEL", "TEXT", "URL"}
		var rows [][]string
		for _, e := range doc.Elements {
			level := ""
			if e.Type == md.ElementHeader {
				level = strconv.Itoa(e.Level)
			}
			rows = append(rows, []string{e.Type.String(), level, elementText(e), e.URL})
		}
		renderer.RenderTable(headers, rows)
	}

	if opts.output != "json" {
		for _, w := range doc.Warnings {
			renderer.Error(w)
		}
	}

	if opts.strict && len(doc.Warnings) > 0 {
		return fmt.Errorf("%d parse warning(s): %s", len(doc.Warnings), strings.Join(doc.Warnings, "; "))
	}

	return nil
}

// parseQuietly parses without the WARN log lines; the warnings are shown
// through the renderer instead.
func parseQuietly(source string) *md.Document {
	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)
	return md.ParseDocument(source)
}

func elementText(e md.Element) string {
	text := e.Text
	if e.Type == md.ElementList {
		text = strings.Join(e.Items, "; ")
	}
	text = strings.ReplaceAll(text, "\n", `\n`)
	return view.Truncate(text, 60)
}
