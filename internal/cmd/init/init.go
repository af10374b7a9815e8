// Package init provides the init command for trail.
package init

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/config"
	"github.com/open-cli-collective/transit-cli/pkg/md"
)

const verifyTimeout = 10 * time.Second

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		apiKey   string
		baseURL  string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize trail configuration",
		Long: `Initialize trail with your Winnipeg Transit API key.

This command will guide you through setting up your API key, response
name length, and markdown engine. The configuration will be saved to
~/.config/trail/config.yml.

To get an API key:
  1. Go to https://api.winnipegtransit.com/home/users/new
  2. Register and confirm your email
  3. Copy the key shown on your account page`,
		Example: `  # Interactive setup
  trail init

  # Pre-populate the key
  trail init --api-key abc123`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(apiKey, baseURL, noVerify)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Winnipeg Transit API key")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API endpoint (default: "+api.DefaultBaseURL+")")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip connection verification")

	return cmd
}

func runInit(prefillKey, prefillURL string, noVerify bool) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		APIKey:  prefillKey,
		BaseURL: prefillURL,
		Usage:   string(api.UsageNormal),
		Engine:  string(md.EngineNative),
	}

	usageOptions := make([]huh.Option[string], 0, len(api.ValidUsages()))
	for _, u := range api.ValidUsages() {
		usageOptions = append(usageOptions, huh.NewOption(u, u))
	}
	engineOptions := make([]huh.Option[string], 0, len(md.Engines()))
	for _, e := range md.Engines() {
		engineOptions = append(engineOptions, huh.NewOption(e, e))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API Key").
				Description("Your Winnipeg Transit API key").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.APIKey).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("API key is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("API Endpoint (optional)").
				Description("Leave blank for the public endpoint").
				Placeholder(api.DefaultBaseURL).
				Value(&cfg.BaseURL),

			huh.NewSelect[string]().
				Title("Name Length").
				Description("How long stop and street names should be in responses").
				Options(usageOptions...).
				Value(&cfg.Usage),

			huh.NewSelect[string]().
				Title("Markdown Engine").
				Description("Used to render advisory bodies as HTML").
				Options(engineOptions...).
				Value(&cfg.Engine),

			huh.NewConfirm().
				Title("Escape HTML?").
				Description("Escape raw HTML in advisory text before rendering").
				Value(&cfg.EscapeHTML),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.NormalizeURL()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify connection unless skipped
	if !noVerify {
		fmt.Print("Verifying connection... ")
		if err := verifyConnection(cfg); err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("connection verification failed: %w", err)
		}
		fmt.Println("success!")
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  trail advisory list")
	fmt.Println("  trail stop nearby --lat 49.8951 --lon -97.1384")

	return nil
}

func verifyConnection(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	err := api.NewClient(cfg.BaseURL, cfg.APIKey).Ping(ctx)
	if err == nil {
		return nil
	}

	var apiErr *api.ErrorResponse
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return errors.New("authentication failed - check your API key")
	case http.StatusForbidden:
		return errors.New("access denied - the API key may be disabled")
	}
	return fmt.Errorf("unexpected status code: %d", apiErr.StatusCode)
}
