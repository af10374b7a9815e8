// Package mdcmd provides commands for converting markdown outside of the
// transit API.
package mdcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewCmdMarkdown creates the md command.
func NewCmdMarkdown() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "md",
		Aliases: []string{"markdown"},
		Short:   "Convert markdown documents",
		Long: `Convert markdown to HTML, inspect how it parses, or turn HTML back
into markdown. Input is read from a file argument or from stdin.`,
	}

	cmd.AddCommand(NewCmdRender())
	cmd.AddCommand(NewCmdElements())
	cmd.AddCommand(NewCmdFromHTML())

	return cmd
}

// readInput reads the named file, or in when the name is empty or "-".
func readInput(args []string, in io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
