package stop

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/view"
)

type featuresOptions struct {
	usage   string
	output  string
	noColor bool
	out     io.Writer
}

// NewCmdFeatures creates the stop features command.
func NewCmdFeatures() *cobra.Command {
	opts := &featuresOptions{}

	cmd := &cobra.Command{
		Use:     "features <stop-number>",
		Short:   "List amenities at a stop",
		Long:    `List features such as benches and heated shelters at a stop.`,
		Example: `  trail stop features 10064`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runFeatures(args[0], opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.usage, "usage", "", "Name length in responses (normal, long, short)")
	completion.RegisterFlagValues(cmd, "usage", api.ValidUsages()...)

	return cmd
}

func runFeatures(arg string, opts *featuresOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	key, err := parseStopKey(arg)
	if err != nil {
		return err
	}

	var configured api.Usage
	if client == nil {
		c, u, err := loadClient()
		if err != nil {
			return err
		}
		client, configured = c, u
	}

	usage, err := resolveUsage(opts.usage, configured)
	if err != nil {
		return err
	}

	features, err := client.ListStopFeatures(context.Background(), key, usage)
	if err != nil {
		return fmt.Errorf("failed to get stop features: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(features)
	}

	if len(features) == 0 {
		renderer.RenderText("No features listed for this stop.")
		return nil
	}

	headers := []string{"FEATURE", "COUNT"}
	var rows [][]string
	for _, f := range features {
		rows = append(rows, []string{f.Name, strconv.Itoa(f.Count)})
	}

	renderer.RenderTable(headers, rows)

	return nil
}
