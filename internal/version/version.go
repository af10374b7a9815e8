// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time via ldflags, e.g.
//
//	-X github.com/open-cli-collective/transit-cli/internal/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Template is the cobra version template for the trail binary.
func Template() string {
	return fmt.Sprintf("trail version {{.Version}} (commit: %s, built: %s)\n", Commit, Date)
}
