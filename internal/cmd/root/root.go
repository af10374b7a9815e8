// Package root provides the root command for the trail CLI.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/internal/cmd/advisory"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/transit-cli/internal/cmd/init"
	"github.com/open-cli-collective/transit-cli/internal/cmd/mdcmd"
	"github.com/open-cli-collective/transit-cli/internal/cmd/stop"
	"github.com/open-cli-collective/transit-cli/internal/config"
	"github.com/open-cli-collective/transit-cli/internal/version"
	"github.com/open-cli-collective/transit-cli/internal/view"
)

// NewCmdRoot creates the root command for trail.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trail",
		Short: "A command-line interface for Winnipeg Transit",
		Long: `trail is a CLI tool for Winnipeg Transit service advisories and stops.

Advisory bodies are written in a light markdown dialect; trail converts
them to HTML with a built-in one-pass converter or with goldmark.

Get started by running: trail init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyDefaultOutput(cmd, config.DefaultConfigPath())
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	_ = cmd.RegisterFlagCompletionFunc("output", completion.Values(view.ValidFormats()...))

	cmd.SetVersionTemplate(version.Template())

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(advisory.NewCmdAdvisory())
	cmd.AddCommand(stop.NewCmdStop())
	cmd.AddCommand(mdcmd.NewCmdMarkdown())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// applyDefaultOutput sets --output from the configured output_format when
// the flag was not given on the command line.
func applyDefaultOutput(cmd *cobra.Command, configPath string) error {
	flag := cmd.Flags().Lookup("output")
	if flag == nil || flag.Changed {
		return nil
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil || cfg.OutputFormat == "" {
		return nil
	}
	if err := view.ValidateFormat(cfg.OutputFormat); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return flag.Value.Set(cfg.OutputFormat)
}
