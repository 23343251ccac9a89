package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
)

// headerAliases are first-column values (trimmed, lowercased) that mark
// the first non-blank line as a header row to skip
var headerAliases = map[string]bool{
	"url":     true,
	"domain":  true,
	"website": true,
}

// ReadOriginsFile loads an ordered origin list from disk. CSV input
// takes each line's first column; .yaml/.yml input takes either a bare
// string sequence or an "origins:" list.
func ReadOriginsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read origin list: %w", err)
	}

	var origins []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		origins, err = parseYAMLOrigins(data)
	default:
		origins, err = ParseCSVOrigins(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	if len(origins) == 0 {
		return nil, domain.ErrEmptyOriginList
	}
	return origins, nil
}

// ParseCSVOrigins extracts origins from comma-delimited text: every
// line's first column, with a url/domain/website header row skipped
func ParseCSVOrigins(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var origins []string
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse origin list: %w", err)
		}

		if len(rec) == 0 {
			continue
		}
		col := strings.TrimSpace(rec[0])
		if col == "" {
			continue
		}

		if first {
			first = false
			if headerAliases[strings.ToLower(col)] {
				continue
			}
		}

		origins = append(origins, col)
	}

	return origins, nil
}

func parseYAMLOrigins(data []byte) ([]string, error) {
	// Bare sequence form: ["a.com", "b.com"]
	var bare []string
	if err := yaml.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	// Mapping form: origins: [...]
	var doc struct {
		Origins []string `yaml:"origins"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse origin list: %w", err)
	}
	return doc.Origins, nil
}
