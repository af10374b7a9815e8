// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// envVars lists every environment variable that can override the config file.
var envVars = []string{
	"TRAIL_API_KEY", "WPG_TRANSIT_API_KEY", "TRAIL_BASE_URL",
	"TRAIL_USAGE", "TRAIL_OUTPUT", "TRAIL_ENGINE", "TRAIL_ESCAPE_HTML",
}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage trail configuration",
		Long:  `Commands for viewing, testing, and clearing trail configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdTest())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
