package advisory

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/advisory"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/view"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

type viewOptions struct {
	html    bool
	raw     bool
	engine  string
	escape  bool
	usage   string
	output  string
	noColor bool
	out     io.Writer
}

// NewCmdView creates the advisory view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <key>",
		Short: "View a service advisory",
		Long: `View a single service advisory.

The body is shown as markdown by default. Use --html to convert it the
same way 'trail advisory html' does, or --raw for the body exactly as the
API returned it.`,
		Example: `  # View an advisory
  trail advisory view 96

  # Show the body as HTML
  trail advisory view 96 --html --engine goldmark`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runView(args[0], opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Show the body converted to HTML")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Show the body exactly as returned by the API")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Markdown engine for --html (native, goldmark)")
	cmd.Flags().BoolVar(&opts.escape, "escape", false, "Escape HTML in the body when converting")
	cmd.Flags().StringVar(&opts.usage, "usage", "", "Name length in responses (normal, long, short)")

	completion.RegisterFlagValues(cmd, "engine", md.Engines()...)
	completion.RegisterFlagValues(cmd, "usage", api.ValidUsages()...)

	return cmd
}

func runView(keyArg string, opts *viewOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	key, err := strconv.Atoi(keyArg)
	if err != nil {
		return fmt.Errorf("invalid advisory key %q: must be a number", keyArg)
	}

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

	usage, err := api.ParseUsage(opts.usage)
	if err != nil {
		return err
	}
	engine, err := md.ParseEngine(opts.engine)
	if err != nil {
		return err
	}

	a, err := client.GetServiceAdvisory(context.Background(), key, usage)
	if err != nil {
		return fmt.Errorf("failed to get service advisory: %w", err)
	}

	w := writerOrStdout(opts.out)
	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(w)

	if opts.output == "json" {
		return renderer.RenderJSON(a)
	}

	renderer.RenderKeyValue("Title", a.Title)
	renderer.RenderKeyValue("Key", strconv.Itoa(a.Key))
	renderer.RenderKeyValue("Priority", fmt.Sprintf("%s (%d)", a.Priority, a.Priority))
	renderer.RenderKeyValue("Category", string(a.Category))
	if !a.UpdatedAt.IsZero() {
		renderer.RenderKeyValue("Updated", a.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)

	switch {
	case a.Body == "":
		fmt.Fprintln(w, "(No content)")
	case opts.raw:
		fmt.Fprintln(w, a.Body)
	case opts.html:
		body, err := advisory.BodyHTML(*a, md.ConvertOptions{Engine: engine, EscapeHTML: opts.escape})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, body)
	default:
		fmt.Fprintln(w, advisory.NormalizeBody(a.Body))
	}

	return nil
}
