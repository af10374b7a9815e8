package advisory

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/advisory"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/view"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

type htmlOptions struct {
	filterFlags
	engine     string
	escape     bool
	standalone bool
	style      string
	outFile    string
	out        io.Writer
}

// NewCmdHTML creates the advisory html command.
func NewCmdHTML() *cobra.Command {
	opts := &htmlOptions{}

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Export service advisories as HTML",
		Long: `Render service advisories as collapsible HTML sections.

Each advisory becomes a <details class="advisory"> block whose summary is
the advisory title, followed by a horizontal rule. Advisory bullets written
as "* " or "** " become list items.`,
		Example: `  # Print the HTML fragment
  trail advisory html

  # Write a complete page with highlighted code blocks
  trail advisory html --standalone --engine goldmark --out advisories.html

  # Escape any HTML in titles and bodies
  trail advisory html --escape`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.out = cmd.OutOrStdout()
			return runHTML(opts, nil)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Markdown engine (native, goldmark)")
	cmd.Flags().BoolVar(&opts.escape, "escape", false, "Escape HTML in advisory titles and bodies")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "Write a complete HTML document")
	cmd.Flags().StringVar(&opts.style, "style", md.DefaultStyle, "Code highlighting style for --standalone")
	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write to this file instead of stdout")

	completion.RegisterFlagValues(cmd, "engine", md.Engines()...)
	completion.RegisterFlagValues(cmd, "style", md.Styles()...)

	return cmd
}

func runHTML(opts *htmlOptions, client *api.Client) error {
	if client == nil {
		c, cfg, err := loadClient()
		if err != nil {
			return err
		}
		client = c
		if opts.usage == "" {
			opts.usage = cfg.Usage
		}
		if err := convertDefaults(cfg, &opts.engine, &opts.escape); err != nil {
			return err
		}
	}

	engine, err := md.ParseEngine(opts.engine)
	if err != nil {
		return err
	}
	apiOpts, err := opts.apiOptions()
	if err != nil {
		return err
	}

	advisories, err := client.ListServiceAdvisories(context.Background(), apiOpts)
	if err != nil {
		return fmt.Errorf("failed to list service advisories: %w", err)
	}

	out, err := advisory.FormatHTML(advisories, md.ConvertOptions{Engine: engine, EscapeHTML: opts.escape})
	if err != nil {
		return err
	}

	if opts.standalone {
		css, err := md.Stylesheet(opts.style)
		if err != nil {
			return err
		}
		out = advisory.Page("Service Advisories", out, css)
	}

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.outFile, err)
		}
		renderer := view.NewRenderer(view.FormatTable, false)
		renderer.SetWriter(writerOrStdout(opts.out))
		renderer.Success(fmt.Sprintf("Wrote %d advisories to %s", len(advisories), opts.outFile))
		return nil
	}

	_, err = fmt.Fprintln(writerOrStdout(opts.out), out)
	return err
}
