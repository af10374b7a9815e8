// Package stop provides transit stop commands.
package stop

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/config"
)

// NewCmdStop creates the stop command.
func NewCmdStop() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stop",
		Aliases: []string{"stops"},
		Short:   "Look up Winnipeg Transit stops",
		Long:    `Commands for viewing stops, their upcoming departures, nearby stops, and stop features.`,
	}

	cmd.AddCommand(NewCmdView())
	cmd.AddCommand(NewCmdSchedule())
	cmd.AddCommand(NewCmdNearby())
	cmd.AddCommand(NewCmdFeatures())

	return cmd
}

// loadClient builds a client from the stored configuration and returns the
// configured usage.
func loadClient() (*api.Client, api.Usage, error) {
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w (run 'trail init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w (run 'trail init' to configure)", err)
	}
	cfg.NormalizeURL()

	return api.NewClient(cfg.BaseURL, cfg.APIKey), cfg.APIUsage(), nil
}

// resolveUsage prefers the --usage flag over the configured default.
func resolveUsage(flag string, configured api.Usage) (api.Usage, error) {
	if flag == "" && configured != "" {
		return configured, nil
	}
	return api.ParseUsage(flag)
}

func parseStopKey(arg string) (int, error) {
	key, err := strconv.Atoi(arg)
	if err != nil || key <= 0 {
		return 0, fmt.Errorf("invalid stop number %q: must be a positive number", arg)
	}
	return key, nil
}

func streetName(s api.Street) string {
	if s.Name == "" {
		return "-"
	}
	return s.Name
}
