package stop

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/view"
)

type viewOptions struct {
	usage   string
	output  string
	noColor bool
	out     io.Writer
}

// NewCmdView creates the stop view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <stop-number>",
		Short: "View a stop",
		Long:  `Show where a stop is, which way its buses travel, and what streets it sits on.`,
		Example: `  # View stop 10064
  trail stop view 10064

  # Output as JSON
  trail stop view 10064 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runView(args[0], opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.usage, "usage", "", "Name length in responses (normal, long, short)")
	completion.RegisterFlagValues(cmd, "usage", api.ValidUsages()...)

	return cmd
}

func runView(arg string, opts *viewOptions, client *api.Client) error {
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

	stop, err := client.GetStop(context.Background(), key, usage)
	if err != nil {
		return fmt.Errorf("failed to get stop: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	} else {
		renderer.SetWriter(os.Stdout)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(stop)
	}

	geo := stop.Centre.Geographic
	renderer.RenderKeyValue("Name", stop.Name)
	renderer.RenderKeyValue("Number", strconv.Itoa(stop.Number))
	renderer.RenderKeyValue("Direction", stop.Direction)
	renderer.RenderKeyValue("Side", stop.Side)
	renderer.RenderKeyValue("Street", streetName(stop.Street))
	renderer.RenderKeyValue("Cross Street", streetName(stop.CrossStreet))
	renderer.RenderKeyValue("Location", fmt.Sprintf("%.5f, %.5f", float64(geo.Latitude), float64(geo.Longitude)))

	return nil
}
