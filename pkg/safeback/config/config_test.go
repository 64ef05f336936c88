package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/safeback/pkg/safeback/audit"
	"github.com/arthur-debert/safeback/pkg/safeback/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, audit.DefaultFileName, cfg.LogFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.NotEmpty(t, cfg.User)
	assert.Empty(t, cfg.Root)
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, audit.DefaultFileName, cfg.LogFile)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: /tmp/work\nuser: alice\nlog_level: debug\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/work", cfg.Root)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, audit.DefaultFileName, cfg.LogFile)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t-"), 0644))
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SAFEBACK_USER", "envuser")
	t.Setenv("SAFEBACK_LOG_FILE", "audit.jsonl")
	t.Setenv("SAFEBACK_LOG_LEVEL", "trace")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "envuser", cfg.User)
	assert.Equal(t, "audit.jsonl", cfg.LogFile)
	assert.Equal(t, "trace", cfg.LogLevel)
}
