package stop

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/view"
)

const clockLayout = "15:04:05"

type scheduleOptions struct {
	routes      []string
	start       string
	end         string
	maxPerRoute int
	usage       string
	output      string
	noColor     bool
	out         io.Writer
}

// NewCmdSchedule creates the stop schedule command.
func NewCmdSchedule() *cobra.Command {
	opts := &scheduleOptions{}

	cmd := &cobra.Command{
		Use:   "schedule <stop-number>",
		Short: "Show upcoming departures from a stop",
		Long: `Show the buses due at a stop, soonest first.

Each departure is compared with the timetable: LATE and EARLY rows show the
time the bus was scheduled for. Cancelled trips are left out.`,
		Example: `  # Next two hours at stop 10064
  trail stop schedule 10064

  # Only route 16, at most three buses
  trail stop schedule 10064 --route 16 --max-per-route 3

  # Evening window
  trail stop schedule 10064 --start 18:00 --end 20:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runSchedule(args[0], opts, nil)
		},
	}

	cmd.Flags().StringSliceVar(&opts.routes, "route", nil, "Only show these routes (repeatable or comma-separated)")
	cmd.Flags().StringVar(&opts.start, "start", "", "Earliest departure, HH:MM (default: now)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Latest departure, HH:MM (default: two hours from now)")
	cmd.Flags().IntVar(&opts.maxPerRoute, "max-per-route", 0, "Maximum departures per route (0 for no limit)")
	cmd.Flags().StringVar(&opts.usage, "usage", "", "Name length in responses (normal, long, short)")
	completion.RegisterFlagValues(cmd, "usage", api.ValidUsages()...)

	return cmd
}

func runSchedule(arg string, opts *scheduleOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	key, err := parseStopKey(arg)
	if err != nil {
		return err
	}

	if opts.maxPerRoute < 0 {
		return fmt.Errorf("--max-per-route must not be negative")
	}

	query := &api.StopScheduleOptions{
		Routes:             opts.routes,
		MaxResultsPerRoute: opts.maxPerRoute,
	}
	if query.Start, err = parseClockFlag("start", opts.start); err != nil {
		return err
	}
	if query.End, err = parseClockFlag("end", opts.end); err != nil {
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

	if query.Usage, err = resolveUsage(opts.usage, configured); err != nil {
		return err
	}

	schedule, err := client.GetStopSchedule(context.Background(), key, query)
	if err != nil {
		return fmt.Errorf("failed to get stop schedule: %w", err)
	}
	departures := schedule.Departures()

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(departures)
	}

	if opts.output != "plain" {
		stop := schedule.Stop
		renderer.RenderText(fmt.Sprintf("#%d: %s %s @ %s",
			stop.Number, stop.Direction, streetName(stop.Street), streetName(stop.CrossStreet)))
	}

	if len(departures) == 0 {
		renderer.RenderText("No upcoming departures.")
		return nil
	}

	headers := []string{"DEPARTURE", "STATUS", "SCHEDULED", "ROUTE"}
	var rows [][]string
	for _, d := range departures {
		scheduled := ""
		if d.Status != api.StatusOnTime {
			scheduled = "was " + d.Scheduled.Format(clockLayout)
		}
		rows = append(rows, []string{
			d.Estimated.Format(clockLayout),
			string(d.Status),
			scheduled,
			d.Route,
		})
	}

	renderer.RenderTable(headers, rows)

	return nil
}

func parseClockFlag(name, value string) (*api.Clock, error) {
	if value == "" {
		return nil, nil
	}
	c, err := api.ParseClock(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return &c, nil
}
