package main

import (
	"fmt"
	"os"

	"github.com/open-cli-collective/transit-cli/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
