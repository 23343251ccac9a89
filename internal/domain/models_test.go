package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOutcomeJSONFieldNames(t *testing.T) {
	outcome := CheckOutcome{
		URL:       "https://example.com",
		Detected:  true,
		Valid:     true,
		Version:   "0.1",
		ToolCount: 2,
		ToolNames: "a; b",
	}

	data, err := json.Marshal(outcome)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{"url", "detected", "valid", "version", "tool_count", "tool_names", "error"} {
		assert.Contains(t, fields, key)
	}
}

func TestWellKnownPath(t *testing.T) {
	assert.Equal(t, "/.well-known/webmcp.json", WellKnownPath)
}
