package configcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/config"
)

const testTimeout = 10 * time.Second

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test connectivity with the configured API key",
		Long:  `Test that trail can reach the Winnipeg Transit API with the current configuration.`,
		Example: `  # Test connection
  trail config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(noColor, cmd.OutOrStdout(), nil)
		},
	}

	return cmd
}

func runTest(noColor bool, out io.Writer, cfg *config.Config) error {
	if noColor {
		color.NoColor = true
	}

	if cfg == nil {
		var err error
		cfg, err = config.LoadWithEnv(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'trail init' to configure)", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w (run 'trail init' to configure)", err)
		}
		cfg.NormalizeURL()
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	client := api.NewClient(cfg.BaseURL, cfg.APIKey)
	fmt.Fprintf(out, "Testing connection to %s...\n", client.BaseURL())

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	err := client.Ping(ctx)
	if err == nil {
		_, _ = green.Fprintln(out, "✓ API key accepted")
		_, _ = green.Fprintln(out, "✓ Service advisories reachable")
		return nil
	}

	var apiErr *api.ErrorResponse
	if !errors.As(err, &apiErr) {
		_, _ = red.Fprintln(out, "✗ Connection failed:", err)
		fmt.Fprintln(out, "\nCheck your endpoint with: trail config show")
		fmt.Fprintln(out, "Reconfigure with: trail init")
		return fmt.Errorf("connection failed: %w", err)
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		_, _ = red.Fprintln(out, "✗ Authentication failed: 401 Unauthorized")
		fmt.Fprintln(out, "\nCheck your API key with: trail config show")
		fmt.Fprintln(out, "Reconfigure with: trail init")
		return errors.New("authentication failed")
	case http.StatusForbidden:
		_, _ = red.Fprintln(out, "✗ Access denied: 403 Forbidden")
		fmt.Fprintln(out, "\nThe API key may be disabled.")
		return errors.New("access denied")
	}

	_, _ = red.Fprintf(out, "✗ Unexpected response: %d\n", apiErr.StatusCode)
	return fmt.Errorf("unexpected status code: %d", apiErr.StatusCode)
}
