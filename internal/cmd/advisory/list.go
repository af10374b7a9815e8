package advisory

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/advisory"
	"github.com/open-cli-collective/transit-cli/internal/view"
)

type listOptions struct {
	filterFlags
	output  string
	noColor bool
	out     io.Writer
}

// NewCmdList creates the advisory list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List service advisories",
		Long:    `List current Winnipeg Transit service advisories, most urgent first.`,
		Example: `  # List all advisories
  trail advisory list

  # Only high priority transit advisories from the last week
  trail advisory list --priority high --category transit --max-age 7

  # Output as JSON
  trail advisory list -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runList(opts, nil)
		},
	}

	opts.register(cmd)

	return cmd
}

func runList(opts *listOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
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
	}

	apiOpts, err := opts.apiOptions()
	if err != nil {
		return err
	}

	advisories, err := client.ListServiceAdvisories(context.Background(), apiOpts)
	if err != nil {
		return fmt.Errorf("failed to list service advisories: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(writerOrStdout(opts.out))

	if opts.output == "json" {
		return renderer.RenderJSON(advisories)
	}

	if len(advisories) == 0 {
		renderer.RenderText("No service advisories found.")
		return nil
	}

	headers := []string{"KEY", "PRIORITY", "CATEGORY", "UPDATED", "TITLE", "SUMMARY"}
	var rows [][]string

	for _, a := range advisories {
		updated := ""
		if !a.UpdatedAt.IsZero() {
			updated = a.UpdatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			strconv.Itoa(a.Key),
			a.Priority.String(),
			string(a.Category),
			updated,
			view.Truncate(a.Title, 40),
			view.Truncate(advisory.Summary(a), 50),
		})
	}

	renderer.RenderTable(headers, rows)

	if opts.limit > 0 && len(advisories) == opts.limit {
		fmt.Fprintf(writerOrStdout(opts.out), "\n(showing first %d results, use --limit to see more)\n", len(advisories))
	}

	return nil
}
