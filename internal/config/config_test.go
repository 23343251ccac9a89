package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultTimeout, cfg.HTTP.Timeout)
	assert.Equal(t, DefaultOutputFile, cfg.Output.File)
	assert.Equal(t, DefaultServeAddr, cfg.Serve.Addr)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		HTTP:    HTTPConfig{Timeout: 30 * time.Second},
		Output:  OutputConfig{File: "out.csv"},
		Serve:   ServeConfig{Addr: ":9000"},
		Logging: LoggingConfig{Level: "debug", Format: "json"},
	}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "out.csv", cfg.Output.File)
	assert.Equal(t, ":9000", cfg.Serve.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidateRejectsSubSecondTimeout(t *testing.T) {
	cfg := &Config{HTTP: HTTPConfig{Timeout: 50 * time.Millisecond}}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultTimeout, cfg.HTTP.Timeout)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, ".mcpcheck")
}

func TestConfigFilePath(t *testing.T) {
	path := ConfigFilePath()
	assert.True(t, strings.HasSuffix(path, filepath.Join(".mcpcheck", "config.yaml")), "path: %s", path)
}
