// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"macaron/internal/storage"
)

// Config holds the full application configuration.
type Config struct {
	// DBPath is the sqlite file holding the persisted snapshot.
	DBPath string `toml:"db_path"`
	// ExportDir is where CSV exports are written. Defaults to the
	// current directory.
	ExportDir string `toml:"export_dir"`
	// LogLevel is one of debug|info|warn|error.
	LogLevel string `toml:"log_level"`
}

// Load builds the configuration from, in priority order: defaults, the
// user config file (~/.macaron.toml) and environment variables
// (MACARON_DB, MACARON_LOG_LEVEL).
func Load() (*Config, error) {
	cfg := &Config{
		ExportDir: ".",
		LogLevel:  "warn",
	}

	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	cfg.DBPath = dbPath

	if path := userConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("MACARON_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MACARON_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

func userConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(homeDir, ".macaron.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
