package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath overrides the config file search.
	EnvConfigPath = "LUTHIER_CONFIG"

	// ConfigDirName is the directory under the XDG config home.
	ConfigDirName = "luthier"
)

// localFiles are checked in the working directory, in order.
var localFiles = []string{"luthier.toml", "luthier.yaml"}

// FindConfigPath returns the first existing config file in lookup order, or
// "" when there is none.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	for _, name := range localFiles {
		if fileExists(name) {
			if abs, err := filepath.Abs(name); err == nil {
				return abs
			}
			return name
		}
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.toml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.toml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// DefaultConfigPath is where `luthier config init` writes when no path is
// given.
func DefaultConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, ConfigDirName, "config.toml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", ConfigDirName, "config.toml")
	}
	return localFiles[0]
}

// EnsureConfigDir creates the parent directory of configPath.
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
