package app

import (
	"fmt"
	"strings"
)

// manifestJSON builds a schema-valid manifest document declaring the
// given tools
func manifestJSON(toolNames ...string) string {
	tools := make([]string, 0, len(toolNames))
	for _, name := range toolNames {
		tools = append(tools, fmt.Sprintf(`{
			"name": %q,
			"description": "does something useful",
			"version": "1.0.0",
			"tags": [],
			"risk_level": "low",
			"requires_user_confirm": false,
			"input_schema": {},
			"output_schema": {}
		}`, name))
	}

	return fmt.Sprintf(`{
		"manifest_version": "0.1",
		"origin": "https://example.com",
		"updated_at": "2026-01-15T12:00:00Z",
		"tools": [%s]
	}`, strings.Join(tools, ","))
}
