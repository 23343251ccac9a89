package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/mcpcheck-go/internal/output"
)

// Batch of three origins where only the last serves a valid manifest:
// the exported table mirrors input order and flags exactly that row.
func TestBatchPipelineExportsCSV(t *testing.T) {
	noManifest := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer noManifest.Close()

	htmlPage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer htmlPage.Close()

	valid := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(manifestJSON("search_products", "get_order", "create_return")))
	}))
	defer valid.Close()

	checker := newTestChecker(t)
	runner := NewRunner(checker, nil)

	origins := []string{noManifest.URL, htmlPage.URL, valid.URL}
	result := runner.Run(context.Background(), origins, nil)

	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, 1, result.DetectedCount)

	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, result.Outcomes))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, output.Header, records[0])

	// Third data row corresponds to the only valid origin
	row := records[3]
	assert.Equal(t, valid.URL, row[0])
	assert.Equal(t, "true", row[1])
	assert.Equal(t, "true", row[2])
	assert.Equal(t, "0.1", row[3])
	assert.Equal(t, "3", row[4])
	assert.Equal(t, "search_products; get_order; create_return", row[5])
	assert.Empty(t, row[6])

	// Second row was detected as JSON-less content
	assert.Equal(t, "false", records[2][1])
	assert.Equal(t, "Invalid JSON", records[2][6])
}
