// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "runcals"

// Environment overrides for the application directories.
const (
	EnvDataDir   = "RUNCALS_DATA_DIR"
	EnvConfigDir = "RUNCALS_CONFIG_DIR"
)

// ConfigDir returns the directory holding config.toml.
func ConfigDir() string {
	if v := os.Getenv(EnvConfigDir); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// DataDir returns the directory holding the database.
func DataDir() string {
	if v := os.Getenv(EnvDataDir); v != "" {
		return v
	}
	return filepath.Join(xdg.DataHome, appName)
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), appName+".db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
