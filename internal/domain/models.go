package domain

import "net/http"

// WellKnownPath is the fixed path where an origin publishes its
// capability manifest.
const WellKnownPath = "/.well-known/webmcp.json"

// Response represents an HTTP response from a manifest fetch
type Response struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	ContentType string
	URL         string
}

// CheckOutcome is the result of checking a single origin. It is fully
// populated in every branch of the pipeline and never mutated afterwards.
type CheckOutcome struct {
	// URL is the normalized origin, or the raw input when normalization failed
	URL string `json:"url"`

	// Detected reports that a manifest document was retrieved and parsed
	// as JSON, regardless of schema validity
	Detected bool `json:"detected"`

	// Valid reports that the document passed schema validation.
	// Valid implies Detected.
	Valid bool `json:"valid"`

	// Version is the manifest_version field, empty unless Valid
	Version string `json:"version"`

	// ToolCount is the number of tools declared, 0 unless Valid
	ToolCount int `json:"tool_count"`

	// ToolNames is the "; "-joined list of tool names, empty unless Valid
	ToolNames string `json:"tool_names"`

	// Error is a human-readable diagnostic, empty when Valid
	Error string `json:"error"`

	// Fingerprint is the SHA-256 of the manifest's canonical (RFC 8785)
	// form, empty unless Valid. Informational only; not part of the CSV
	// output contract.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// BatchResult holds the ordered outcomes of a batch run
type BatchResult struct {
	Outcomes []CheckOutcome `json:"outcomes"`

	// DetectedCount is the number of outcomes with Valid=true
	DetectedCount int `json:"detected_count"`
}
