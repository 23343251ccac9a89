package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
)

// Header is the fixed CSV header. Column names and order are part of
// the output contract and must not vary.
var Header = []string{"url", "detected", "valid", "version", "tool_count", "tool_names", "error"}

// Write renders outcomes as CSV: the fixed header, one row per
// outcome, RFC 4180 escaping, and a single trailing newline after the
// last row
func Write(w io.Writer, outcomes []domain.CheckOutcome) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, outcome := range outcomes {
		if err := cw.Write(record(outcome)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes outcomes as CSV to the given path
func WriteFile(path string, outcomes []domain.CheckOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := Write(f, outcomes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func record(o domain.CheckOutcome) []string {
	return []string{
		o.URL,
		strconv.FormatBool(o.Detected),
		strconv.FormatBool(o.Valid),
		o.Version,
		strconv.Itoa(o.ToolCount),
		o.ToolNames,
		o.Error,
	}
}
