package configcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/internal/config"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the trail configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  trail config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runClear(noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runClear(noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	err := os.Remove(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	if os.IsNotExist(err) {
		_, _ = green.Fprintf(out, "✓ No config file to remove\n")
	} else {
		_, _ = green.Fprintf(out, "✓ Configuration cleared from %s\n", configPath)
	}

	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		_, _ = dim.Fprintf(out, "\nNote: Environment variables will still be used: %s\n", strings.Join(activeVars, ", "))
	}

	return nil
}
