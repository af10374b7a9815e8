package mdcmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/internal/advisory"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/config"
	"github.com/open-cli-collective/transit-cli/internal/view"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

type renderOptions struct {
	engine     string
	escape     bool
	standalone bool
	style      string
	title      string
	outFile    string
	in         io.Reader
	out        io.Writer
}

// NewCmdRender creates the md render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert markdown to HTML",
		Long: `Convert a markdown document to HTML.

The native engine is a one-pass converter that produces a flat run of
elements. The goldmark engine supports full CommonMark with tables and
highlighted code blocks.

Without --engine the configured engine is used (TRAIL_ENGINE or the config
file), falling back to native. --escape is also on when the config enables it.`,
		Example: `  # Render a file
  trail md render notes.md

  # Render stdin, escaping any raw HTML
  echo '*hi* <b>there</b>' | trail md render --escape

  # Full page with goldmark and a highlight style
  trail md render notes.md --engine goldmark --standalone --style monokai --out notes.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runRender(args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.engine, "engine", "", "Markdown engine (native, goldmark) (default: from config, else native)")
	cmd.Flags().BoolVar(&opts.escape, "escape", false, "Escape raw HTML in the source")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "Wrap the output in a complete HTML page")
	cmd.Flags().StringVar(&opts.style, "style", md.DefaultStyle, "Code highlight style for --standalone")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title for --standalone (default: file name)")
	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write HTML to a file instead of stdout")

	completion.RegisterFlagValues(cmd, "engine", md.Engines()...)
	completion.RegisterFlagValues(cmd, "style", md.Styles()...)

	return cmd
}

func runRender(args []string, opts *renderOptions) error {
	// The key is not needed to convert, so the config is not validated.
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return err
	}
	defaults, err := cfg.ConvertOptions()
	if err != nil {
		return err
	}
	name := opts.engine
	if name == "" {
		name = string(defaults.Engine)
	}
	engine, err := md.ParseEngine(name)
	if err != nil {
		return err
	}
	escape := opts.escape || defaults.EscapeHTML

	source, err := readInput(args, opts.in)
	if err != nil {
		return err
	}

	html, err := md.Convert(source, md.ConvertOptions{Engine: engine, EscapeHTML: escape})
	if err != nil {
		return err
	}

	if opts.standalone {
		css, err := md.Stylesheet(opts.style)
		if err != nil {
			return err
		}
		html = advisory.Page(pageTitle(args, opts.title), html, css)
	}

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.outFile, err)
		}
		renderer := view.NewRenderer(view.FormatTable, false)
		renderer.SetWriter(writerOrStdout(opts.out))
		renderer.Success("Wrote " + opts.outFile)
		return nil
	}

	out := writerOrStdout(opts.out)
	if !strings.HasSuffix(html, "\n") {
		html += "\n"
	}
	_, err = io.WriteString(out, html)
	return err
}

func pageTitle(args []string, title string) string {
	if title != "" {
		return title
	}
	if len(args) == 0 || args[0] == "-" {
		return "Document"
	}
	base := filepath.Base(args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}
