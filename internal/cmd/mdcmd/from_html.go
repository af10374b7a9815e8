package mdcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transit-cli/pkg/md"
)

type fromHTMLOptions struct {
	in  io.Reader
	out io.Writer
}

// NewCmdFromHTML creates the md from-html command.
func NewCmdFromHTML() *cobra.Command {
	opts := &fromHTMLOptions{}

	cmd := &cobra.Command{
		Use:     "from-html [file]",
		Short:   "Convert HTML to markdown",
		Example: `  curl -s https://example.com/notice.html | trail md from-html`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runFromHTML(args, opts)
		},
	}

	return cmd
}

func runFromHTML(args []string, opts *fromHTMLOptions) error {
	source, err := readInput(args, opts.in)
	if err != nil {
		return err
	}

	markdown, err := md.FromHTML(source)
	if err != nil {
		return fmt.Errorf("failed to convert HTML: %w", err)
	}

	_, err = fmt.Fprintln(writerOrStdout(opts.out), markdown)
	return err
}
