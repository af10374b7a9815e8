package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current trail configuration with source indicators.`,
		Example: `  # Show current config
  trail config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

// maskKey hides all but the ends of an API key.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

func runShow(noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue string, secret bool, envVars ...string) {
		_, _ = bold.Fprintf(out, "%-10s", label+":")

		if value == "" {
			_, _ = dim.Fprintln(out, "-")
			return
		}

		display := value
		if secret {
			display = maskKey(value)
		}
		fmt.Fprint(out, display)

		source := "config"
		if fileErr != nil {
			source = "-"
		}
		for _, envVar := range envVars {
			if v := os.Getenv(envVar); v != "" && v == value {
				source = envVar
				break
			}
		}
		if fileValue != value && source == "config" {
			source = "-"
		}

		_, _ = dim.Fprintf(out, "  (source: %s)\n", source)
	}

	escape, fileEscape := "", ""
	if cfg.EscapeHTML {
		escape = strconv.FormatBool(cfg.EscapeHTML)
	}
	if fileCfg.EscapeHTML {
		fileEscape = strconv.FormatBool(fileCfg.EscapeHTML)
	}

	printField("API Key", cfg.APIKey, fileCfg.APIKey, true, "TRAIL_API_KEY", "WPG_TRANSIT_API_KEY")
	printField("Endpoint", cfg.BaseURL, fileCfg.BaseURL, false, "TRAIL_BASE_URL")
	printField("Usage", cfg.Usage, fileCfg.Usage, false, "TRAIL_USAGE")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, false, "TRAIL_OUTPUT")
	printField("Engine", cfg.Engine, fileCfg.Engine, false, "TRAIL_ENGINE")
	printField("Escape", escape, fileEscape, false, "TRAIL_ESCAPE_HTML")

	fmt.Fprintln(out)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	return nil
}
