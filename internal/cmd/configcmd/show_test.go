package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/transit-cli/internal/config"
)

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "abcd****mnop", maskKey("abcdefghmnop"))
	assert.Equal(t, "*****", maskKey("short"))
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &config.Config{
		APIKey: "abcd1234secretwxyz",
		Usage:  "short",
		Engine: "goldmark",
	}
	require.NoError(t, cfg.Save(filepath.Join(tmpDir, "trail", "config.yml")))

	var buf bytes.Buffer
	require.NoError(t, runShow(true, &buf))

	output := buf.String()
	assert.Contains(t, output, "abcd**********wxyz  (source: config)")
	assert.NotContains(t, output, "secret")
	assert.Contains(t, output, "goldmark  (source: config)")
	assert.NotContains(t, output, "(file not found)")
}

func TestRunShow_EnvOverride(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("TRAIL_USAGE", "long")

	cfg := &config.Config{APIKey: "file-key-value", Usage: "short"}
	require.NoError(t, cfg.Save(filepath.Join(tmpDir, "trail", "config.yml")))

	var buf bytes.Buffer
	require.NoError(t, runShow(true, &buf))
	assert.Contains(t, buf.String(), "long  (source: TRAIL_USAGE)")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	require.NoError(t, runShow(true, &buf))
	assert.Contains(t, buf.String(), "(file not found)")
}
