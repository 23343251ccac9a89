package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// HTTP defaults
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "mcpcheck/1.0"

	// Output defaults
	DefaultOutputFile = "webmcp-results.csv"

	// Serve defaults
	DefaultServeAddr = ":8389"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mcpcheck"
	}
	return filepath.Join(home, ".mcpcheck")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
