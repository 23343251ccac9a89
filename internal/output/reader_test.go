package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCSVOrigins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "url header skipped",
			input:    "url\nexample.com\nstripe.com\n",
			expected: []string{"example.com", "stripe.com"},
		},
		{
			name:     "domain header skipped case-insensitively",
			input:    "Domain,notes\nexample.com,shop\n",
			expected: []string{"example.com"},
		},
		{
			name:     "website header skipped",
			input:    "WEBSITE\nexample.com\n",
			expected: []string{"example.com"},
		},
		{
			name:     "no header keeps first line",
			input:    "example.com\nstripe.com\n",
			expected: []string{"example.com", "stripe.com"},
		},
		{
			name:     "only first column used",
			input:    "example.com,ignored,columns\nstripe.com,x\n",
			expected: []string{"example.com", "stripe.com"},
		},
		{
			name:     "quoted values stripped",
			input:    "\"example.com\"\n\"stripe.com\"\n",
			expected: []string{"example.com", "stripe.com"},
		},
		{
			name:     "blank lines skipped before header detection",
			input:    "\n\nurl\nexample.com\n",
			expected: []string{"example.com"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			origins, err := ParseCSVOrigins(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, origins)
		})
	}
}

func TestReadOriginsFileCSV(t *testing.T) {
	path := writeTempFile(t, "origins.csv", "url\nexample.com\nstripe.com\n")

	origins, err := ReadOriginsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "stripe.com"}, origins)
}

func TestReadOriginsFileYAMLList(t *testing.T) {
	path := writeTempFile(t, "origins.yaml", "- example.com\n- stripe.com\n")

	origins, err := ReadOriginsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "stripe.com"}, origins)
}

func TestReadOriginsFileYAMLMapping(t *testing.T) {
	path := writeTempFile(t, "origins.yml", "origins:\n  - example.com\n  - stripe.com\n")

	origins, err := ReadOriginsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "stripe.com"}, origins)
}

func TestReadOriginsFileEmpty(t *testing.T) {
	path := writeTempFile(t, "origins.csv", "")

	_, err := ReadOriginsFile(path)
	assert.True(t, errors.Is(err, domain.ErrEmptyOriginList))
}

func TestReadOriginsFileHeaderOnly(t *testing.T) {
	path := writeTempFile(t, "origins.csv", "url\n")

	_, err := ReadOriginsFile(path)
	assert.True(t, errors.Is(err, domain.ErrEmptyOriginList))
}

func TestReadOriginsFileMissing(t *testing.T) {
	_, err := ReadOriginsFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
