package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		opts     LoggerOptions
		expected zerolog.Level
	}{
		{
			name:     "default level",
			opts:     LoggerOptions{},
			expected: zerolog.InfoLevel,
		},
		{
			name:     "debug level",
			opts:     LoggerOptions{Level: "debug"},
			expected: zerolog.DebugLevel,
		},
		{
			name:     "warn level",
			opts:     LoggerOptions{Level: "warn"},
			expected: zerolog.WarnLevel,
		},
		{
			name:     "error level",
			opts:     LoggerOptions{Level: "error"},
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "verbose overrides level",
			opts:     LoggerOptions{Level: "error", Verbose: true},
			expected: zerolog.DebugLevel,
		},
		{
			name:     "unknown level falls back to info",
			opts:     LoggerOptions{Level: "bogus"},
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewLogger(tt.opts)
			assert.Equal(t, tt.expected, log.GetLevel())
		})
	}
}

func TestSetGlobalLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	SetGlobalLevel("error")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	SetGlobalLevel("bogus")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	log.WithComponent("checker").Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"checker"`)
}

func TestWithOrigin(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	log.WithOrigin("https://example.com").Info().Msg("checking")

	assert.Contains(t, buf.String(), `"origin":"https://example.com"`)
}
