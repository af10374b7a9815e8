// Package completion provides shell completion generation commands and
// flag value completers shared by the other commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

type shell struct {
	name    string
	long    string
	example string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		long: `To load completions in your current shell session:

  source <(trail completion bash)

To load completions for every new session, write the script to your
bash-completion directory.`,
		example: `  # Linux
  trail completion bash | sudo tee /etc/bash_completion.d/trail > /dev/null

  # macOS with Homebrew
  trail completion bash > $(brew --prefix)/etc/bash_completion.d/trail`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletionV2(w, true)
		},
	},
	{
		name: "zsh",
		long: `Completion must be enabled in ~/.zshrc:

  autoload -Uz compinit && compinit

Then add the script to your fpath:

  trail completion zsh > "${fpath[1]}/_trail"

You may need to start a new shell for completions to take effect.`,
		example: `  source <(trail completion zsh)`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		long: `To load completions for every new session:

  trail completion fish > ~/.config/fish/completions/trail.fish`,
		example: `  trail completion fish | source`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		long: `To load completions for every new session, add the output to your
PowerShell profile.`,
		example: `  trail completion powershell | Out-String | Invoke-Expression

  trail completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for trail.

These scripts enable tab-completion for commands, flags, and flag values
such as --usage, --engine, and --style. See each sub-command's help for
installation instructions.`,
	}

	for _, sh := range shells {
		cmd.AddCommand(newShellCmd(sh))
	}

	return cmd
}

func newShellCmd(sh shell) *cobra.Command {
	return &cobra.Command{
		Use:                   sh.name,
		Short:                 "Generate " + sh.name + " completion script",
		Long:                  "Generate " + sh.name + " completion script for trail.\n\n" + sh.long,
		Example:               sh.example,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// Values returns a flag completion function offering a fixed set of values.
func Values(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp)
}

// RegisterFlagValues attaches a fixed value list to a flag. Flags that do not
// exist on cmd are ignored.
func RegisterFlagValues(cmd *cobra.Command, flag string, values ...string) {
	if cmd.Flags().Lookup(flag) == nil {
		return
	}
	_ = cmd.RegisterFlagCompletionFunc(flag, Values(values...))
}
