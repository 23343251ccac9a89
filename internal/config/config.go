package config

import "time"

// Config represents the application configuration
type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http" yaml:"http"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Serve   ServeConfig   `mapstructure:"serve" yaml:"serve"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// HTTPConfig contains manifest fetch settings
type HTTPConfig struct {
	// Timeout is the hard deadline for a single manifest request,
	// measured from request start
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
	ProxyURL  string        `mapstructure:"proxy_url" yaml:"proxy_url"`
}

// OutputConfig contains batch output settings
type OutputConfig struct {
	// File is the CSV file batch results are written to
	File string `mapstructure:"file" yaml:"file"`
}

// ServeConfig contains local manifest server settings
type ServeConfig struct {
	Addr           string   `mapstructure:"addr" yaml:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for
// invalid values
func (c *Config) Validate() error {
	if c.HTTP.Timeout < time.Second {
		c.HTTP.Timeout = DefaultTimeout
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultServeAddr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
