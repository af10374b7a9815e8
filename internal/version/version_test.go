package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate(t *testing.T) {
	origCommit, origDate := Commit, Date
	t.Cleanup(func() { Commit, Date = origCommit, origDate })

	Commit, Date = "abc1234", "2026-10-01"
	assert.Equal(t, "trail version {{.Version}} (commit: abc1234, built: 2026-10-01)\n", Template())
}
