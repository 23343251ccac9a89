// Package manifest defines the WebMCP capability manifest document, the
// JSON Schema it must conform to, and a validator that reports every
// violation found in a candidate document.
//
// # Manifest Format
//
// A manifest is a JSON document published at /.well-known/webmcp.json:
//
//	{
//	  "manifest_version": "0.1",
//	  "origin": "https://example.com",
//	  "updated_at": "2026-01-15T12:00:00Z",
//	  "tools": [
//	    {
//	      "name": "search_products",
//	      "description": "Search the product catalog",
//	      "version": "1.0.0",
//	      "tags": ["catalog"],
//	      "risk_level": "low",
//	      "requires_user_confirm": false,
//	      "input_schema": {},
//	      "output_schema": {}
//	    }
//	  ]
//	}
//
// Unknown properties are rejected at every level, not ignored.
//
// # Usage
//
// Compile the schema once and reuse the validator; it holds no mutable
// state and is safe for repeated use:
//
//	validator, err := manifest.NewValidator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := validator.Validate(body)
//	if !result.Valid {
//	    fmt.Println(result.Diagnostic())
//	}
package manifest
