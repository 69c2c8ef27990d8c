// Package config resolves runtime settings from an optional TOML file and
// WCAGCHECK_* environment variables. Environment values win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfig    = "WCAGCHECK_CONFIG"
	EnvDB        = "WCAGCHECK_DB"
	EnvExportDir = "WCAGCHECK_EXPORT_DIR"
	EnvLogLevel  = "WCAGCHECK_LOG_LEVEL"

	appDir = ".wcagcheck"
)

// Config holds all runtime settings.
type Config struct {
	DBPath       string `toml:"db_path"`
	ExportDir    string `toml:"export_dir"`
	LogLevel     string `toml:"log_level"`
	FallbackName string `toml:"fallback_name"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DBPath:       filepath.Join(homeDir(), appDir, "wcagcheck.db"),
		ExportDir:    ".",
		LogLevel:     "warn",
		FallbackName: "wcag-checklist",
	}
}

// Path returns the config file location: WCAGCHECK_CONFIG, or
// ~/.wcagcheck/config.toml.
func Path() string {
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return filepath.Join(homeDir(), appDir, "config.toml")
}

// Load reads the file at Path and applies environment overrides.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads path on top of the defaults, then applies environment
// overrides. A missing file is not an error; unknown keys are.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				sort.Strings(keys)
				return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
			}
		}
	}

	applyEnv(&cfg)

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
