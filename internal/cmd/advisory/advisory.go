// Package advisory provides service advisory commands.
package advisory

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/api"
	"github.com/open-cli-collective/transit-cli/internal/cmd/completion"
	"github.com/open-cli-collective/transit-cli/internal/config"
)

// NewCmdAdvisory creates the advisory command.
func NewCmdAdvisory() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "advisory",
		Aliases: []string{"advisories", "sa"},
		Short:   "Read Winnipeg Transit service advisories",
		Long:    `Commands for listing, viewing, and exporting service advisories.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdView())
	cmd.AddCommand(NewCmdHTML())

	return cmd
}

// filterFlags are the advisory filters shared by list and html.
type filterFlags struct {
	priority string
	category string
	maxAge   int
	limit    int
	usage    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Only this priority or more urgent (1-5 or very-high..very-low)")
	cmd.Flags().StringVar(&f.category, "category", "", "Filter by category (transit, handi-transit, all)")
	cmd.Flags().IntVar(&f.maxAge, "max-age", 0, "Only advisories updated in the last N days")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "Maximum number of advisories to return")
	cmd.Flags().StringVar(&f.usage, "usage", "", "Name length in responses (normal, long, short)")

	completion.RegisterFlagValues(cmd, "priority", "very-high", "high", "medium", "low", "very-low")
	completion.RegisterFlagValues(cmd, "category", "transit", "handi-transit", "all")
	completion.RegisterFlagValues(cmd, "usage", api.ValidUsages()...)
}

func (f *filterFlags) apiOptions() (*api.ListServiceAdvisoriesOptions, error) {
	opts := &api.ListServiceAdvisoriesOptions{
		MaxAge: f.maxAge,
		Limit:  f.limit,
	}

	var err error
	if f.priority != "" {
		if opts.Priority, err = api.ParsePriority(f.priority); err != nil {
			return nil, err
		}
	}
	if f.category != "" {
		if opts.Category, err = api.ParseCategory(f.category); err != nil {
			return nil, err
		}
	}
	if opts.Usage, err = api.ParseUsage(f.usage); err != nil {
		return nil, err
	}

	return opts, nil
}

// loadClient builds a client from the stored configuration.
func loadClient() (*api.Client, *config.Config, error) {
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w (run 'trail init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w (run 'trail init' to configure)", err)
	}
	cfg.NormalizeURL()

	return api.NewClient(cfg.BaseURL, cfg.APIKey), cfg, nil
}

// convertDefaults fills the engine and escape settings the flags left unset.
func convertDefaults(cfg *config.Config, engine *string, escape *bool) error {
	defaults, err := cfg.ConvertOptions()
	if err != nil {
		return err
	}
	if *engine == "" {
		*engine = string(defaults.Engine)
	}
	*escape = *escape || defaults.EscapeHTML
	return nil
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
