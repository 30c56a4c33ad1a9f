package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasd-lang/kasd/internal/cli/config"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntP("log-level", "l", config.DefaultLogLevel, "")
	return fs
}

func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chtemp(t)

	cfg, err := config.Load("", newFlags())

	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultHistoryFile, cfg.HistoryFile)
	assert.Empty(t, config.GetConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := chtemp(t)
	path := filepath.Join(dir, "kasd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: 3\nhistory_file: hist\n"), 0o644))

	cfg, err := config.Load("", newFlags())

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LogLevel)
	assert.Equal(t, "hist", cfg.HistoryFile)
	assert.Equal(t, "kasd.yaml", config.GetConfigFileUsed())
}

func TestLoadExplicitConfigFile(t *testing.T) {
	dir := chtemp(t)
	path := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: 2\n"), 0o644))

	cfg, err := config.Load(path, newFlags())

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.LogLevel)
	assert.Equal(t, path, config.GetConfigFileUsed())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chtemp(t)

	_, err := config.Load("does-not-exist.yaml", newFlags())

	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := chtemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kasd.yaml"),
		[]byte("log_level: 3\n"), 0o644))
	t.Setenv("KASD_LOG_LEVEL", "2")

	cfg, err := config.Load("", newFlags())

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.LogLevel)
}

func TestFlagOverridesEnv(t *testing.T) {
	chtemp(t)
	t.Setenv("KASD_LOG_LEVEL", "2")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--log-level", "4"}))

	cfg, err := config.Load("", fs)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.LogLevel)
}

func TestUnchangedFlagDoesNotOverride(t *testing.T) {
	chtemp(t)
	t.Setenv("KASD_LOG_LEVEL", "2")

	cfg, err := config.Load("", newFlags())

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.LogLevel)
}

func TestInvalidLogLevel(t *testing.T) {
	chtemp(t)
	t.Setenv("KASD_LOG_LEVEL", "7")

	_, err := config.Load("", newFlags())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level: 7")
}

func TestHistoryPath(t *testing.T) {
	abs := string(filepath.Separator) + filepath.Join("tmp", "hist")
	cfg := &config.Config{HistoryFile: abs}
	assert.Equal(t, abs, cfg.HistoryPath())

	cfg = &config.Config{HistoryFile: ""}
	assert.Empty(t, cfg.HistoryPath())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cfg = &config.Config{HistoryFile: ".kasd_history"}
	assert.Equal(t, filepath.Join(home, ".kasd_history"), cfg.HistoryPath())
}
