package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("/home/tester", ".wcagcheck", "wcagcheck.db"), cfg.DBPath)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "wcag-checklist", cfg.FallbackName)
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
db_path = "/tmp/state.db"
export_dir = "/tmp/out"
fallback_name = "acme"
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state.db", cfg.DBPath)
	assert.Equal(t, "/tmp/out", cfg.ExportDir)
	assert.Equal(t, "acme", cfg.FallbackName)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadFile_EnvWins(t *testing.T) {
	path := writeConfig(t, `db_path = "/from/file.db"
log_level = "info"`)
	t.Setenv(EnvDB, "/from/env.db")
	t.Setenv(EnvExportDir, "/exports")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "/exports", cfg.ExportDir)
	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	_, err := LoadFile(writeConfig(t, `db_pth = "typo"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db_pth")
}

func TestLoadFile_Malformed(t *testing.T) {
	_, err := LoadFile(writeConfig(t, `db_path = `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadFile_BadLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	_, err := LoadFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/wcagcheck.toml")
	assert.Equal(t, "/etc/wcagcheck.toml", Path())
}

func TestLoad_UsesConfigEnv(t *testing.T) {
	t.Setenv(EnvConfig, writeConfig(t, `fallback_name = "from-env-path"`))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env-path", cfg.FallbackName)
}
