package main

import (
	"fmt"
	"io"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
)

// printOutcome renders a single check result for the terminal
func printOutcome(w io.Writer, o domain.CheckOutcome) {
	if o.Valid {
		fmt.Fprintf(w, "✓ %s\n", o.URL)
		fmt.Fprintf(w, "  manifest version: %s\n", o.Version)
		fmt.Fprintf(w, "  tools (%d): %s\n", o.ToolCount, o.ToolNames)
		if o.Fingerprint != "" {
			fmt.Fprintf(w, "  fingerprint: sha256:%s\n", o.Fingerprint)
		}
		return
	}

	fmt.Fprintf(w, "✗ %s\n", o.URL)
	if o.Error != "" {
		fmt.Fprintf(w, "  %s\n", o.Error)
	}
}

// singleExitCode returns the process exit code for a single-origin
// check: 0 only when the checked origin's manifest is valid
func singleExitCode(o domain.CheckOutcome) int {
	if o.Valid {
		return 0
	}
	return 1
}

// batchExitCode returns the process exit code for a batch run: 0 when
// at least one origin had a valid manifest. Deliberately looser than
// single mode.
func batchExitCode(r *domain.BatchResult) int {
	if r.DetectedCount > 0 {
		return 0
	}
	return 1
}
