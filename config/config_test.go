package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "export", cfg.ExportDir)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ClipboardTimeout)
	assert.Equal(t, 10*time.Minute, cfg.IdleTimeout)
	assert.NotEmpty(t, cfg.LogFile)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "export_dir: /tmp/out\nlog_level: DEBUG\nclipboard_timeout: 5s\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.ExportDir)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ClipboardTimeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "export_dir: fromfile\n")
	t.Setenv("DEVKIT_EXPORT_DIR", "fromenv")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.ExportDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, "log_level: LOUD\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "config validation failed")
}
