package manifest

// SchemaVersion is the only manifest_version this tool understands.
const SchemaVersion = "0.1"

// Schema is the JSON Schema (draft 2020-12) every manifest must satisfy.
// It is compiled once by NewValidator and shared read-only afterwards.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://webmcp.dev/schemas/manifest-0.1.json",
  "type": "object",
  "required": ["manifest_version", "origin", "updated_at", "tools"],
  "additionalProperties": false,
  "properties": {
    "manifest_version": {
      "enum": ["0.1"]
    },
    "origin": {
      "type": "string",
      "pattern": "^https?://"
    },
    "updated_at": {
      "type": "string",
      "format": "date-time"
    },
    "tools": {
      "type": "array",
      "minItems": 1,
      "items": {
        "$ref": "#/$defs/tool"
      }
    },
    "auth": {
      "type": "object",
      "required": ["requires_login"],
      "additionalProperties": false,
      "properties": {
        "requires_login": {
          "type": "boolean"
        },
        "oauth_scopes": {
          "type": "array",
          "items": {
            "type": "string"
          }
        }
      }
    },
    "attestation": {
      "type": "object",
      "required": ["algo", "public_key_jwk", "signature", "signed_fields"],
      "additionalProperties": false,
      "properties": {
        "algo": {
          "enum": ["ed25519"]
        },
        "public_key_jwk": {
          "type": "object"
        },
        "signature": {
          "type": "string"
        },
        "signed_fields": {
          "type": "array",
          "items": {
            "type": "string"
          }
        }
      }
    }
  },
  "$defs": {
    "tool": {
      "type": "object",
      "required": [
        "name",
        "description",
        "version",
        "tags",
        "risk_level",
        "requires_user_confirm",
        "input_schema",
        "output_schema"
      ],
      "additionalProperties": false,
      "properties": {
        "name": {
          "type": "string",
          "pattern": "^[a-z][a-z0-9_]*$"
        },
        "description": {
          "type": "string",
          "minLength": 1
        },
        "version": {
          "type": "string",
          "minLength": 1
        },
        "tags": {
          "type": "array",
          "items": {
            "type": "string"
          }
        },
        "risk_level": {
          "enum": ["low", "medium", "high"]
        },
        "requires_user_confirm": {
          "type": "boolean"
        },
        "input_schema": {
          "type": "object"
        },
        "output_schema": {
          "type": "object"
        },
        "pricing": {
          "type": "object",
          "required": ["model"],
          "additionalProperties": false,
          "properties": {
            "model": {
              "enum": ["free", "per_call", "subscription"]
            },
            "price_usd": {
              "type": "number",
              "minimum": 0
            },
            "notes": {
              "type": "string"
            }
          }
        }
      }
    }
  }
}`
