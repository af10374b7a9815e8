package stop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/view"
)

type nearbyOptions struct {
	lat      float64
	lon      float64
	distance int
	usage    string
	output   string
	noColor  bool
	out      io.Writer
}

// NewCmdNearby creates the stop nearby command.
func NewCmdNearby() *cobra.Command {
	opts := &nearbyOptions{}

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Find stops near a location",
		Long:  `List stops within a distance of a latitude/longitude, closest walk first.`,
		Example: `  # Stops within 250m of The Forks
  trail stop nearby --lat 49.8875 --lon -97.1313

  # Widen the search
  trail stop nearby --lat 49.8875 --lon -97.1313 --distance 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runNearby(opts, nil)
		},
	}

	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "Latitude (required)")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "Longitude (required)")
	cmd.Flags().IntVarP(&opts.distance, "distance", "d", 250, "Search radius in metres")
	cmd.Flags().StringVar(&opts.usage, "usage", "", "Name length in responses (normal, long, short)")
	completion.RegisterFlagValues(cmd, "usage", api.ValidUsages()...)

	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func runNearby(opts *nearbyOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if opts.lat < -90 || opts.lat > 90 || opts.lon < -180 || opts.lon > 180 {
		return fmt.Errorf("invalid location %v, %v", opts.lat, opts.lon)
	}
	if opts.distance <= 0 {
		return errors.New("distance must be greater than 0")
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

	stops, err := client.ListStopsNearby(context.Background(), opts.lat, opts.lon, opts.distance, usage)
	if err != nil {
		return fmt.Errorf("failed to find nearby stops: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(stops)
	}

	if len(stops) == 0 {
		renderer.RenderText("No stops found.")
		return nil
	}

	headers := []string{"NUMBER", "NAME", "DIRECTION", "WALK (M)"}
	var rows [][]string

	for _, s := range stops {
		walk := "-"
		if s.Distances != nil {
			walk = strconv.Itoa(int(s.Distances.Walking + 0.5))
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Number),
			view.Truncate(s.Name, 40),
			s.Direction,
			walk,
		})
	}

	renderer.RenderTable(headers, rows)

	return nil
}
