package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
)

func TestPrintOutcomeValid(t *testing.T) {
	var buf bytes.Buffer
	printOutcome(&buf, domain.CheckOutcome{
		URL:         "https://example.com",
		Detected:    true,
		Valid:       true,
		Version:     "0.1",
		ToolCount:   2,
		ToolNames:   "search_products; get_order",
		Fingerprint: "abc123",
	})

	out := buf.String()
	assert.Contains(t, out, "✓ https://example.com")
	assert.Contains(t, out, "manifest version: 0.1")
	assert.Contains(t, out, "tools (2): search_products; get_order")
	assert.Contains(t, out, "fingerprint: sha256:abc123")
}

func TestPrintOutcomeFailure(t *testing.T) {
	var buf bytes.Buffer
	printOutcome(&buf, domain.CheckOutcome{
		URL:   "https://example.com",
		Error: "HTTP 404",
	})

	out := buf.String()
	assert.Contains(t, out, "✗ https://example.com")
	assert.Contains(t, out, "HTTP 404")
}

func TestOriginArgRequired(t *testing.T) {
	_, err := originArg(nil)
	assert.Error(t, err)

	origin, err := originArg([]string{"https://example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", origin)
}

func TestSingleExitCode(t *testing.T) {
	assert.Equal(t, 0, singleExitCode(domain.CheckOutcome{Detected: true, Valid: true}))
	// Detected but invalid still fails in single mode
	assert.Equal(t, 1, singleExitCode(domain.CheckOutcome{Detected: true}))
	assert.Equal(t, 1, singleExitCode(domain.CheckOutcome{}))
}

func TestBatchExitCode(t *testing.T) {
	assert.Equal(t, 0, batchExitCode(&domain.BatchResult{DetectedCount: 1}))
	assert.Equal(t, 0, batchExitCode(&domain.BatchResult{DetectedCount: 3}))
	assert.Equal(t, 1, batchExitCode(&domain.BatchResult{DetectedCount: 0}))
}
