package manifest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

// Violation is a single schema violation, identified by a JSON-pointer
// style path into the document
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Result is the outcome of validating one document. When Valid is true
// Manifest holds the decoded document; otherwise Violations lists every
// problem found.
type Result struct {
	Valid      bool
	Manifest   *Manifest
	Violations []Violation
}

// Diagnostic renders all violations as a single "; "-joined string
func (r *Result) Diagnostic() string {
	parts := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "; ")
}

// Validator checks documents against the manifest schema. The compiled
// schema is immutable, so a Validator is safe to share across checks.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the manifest schema
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	schema, err := compiler.Compile([]byte(Schema))
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate checks raw JSON bytes against the manifest schema,
// collecting every violation rather than stopping at the first
func (v *Validator) Validate(data []byte) *Result {
	evaluation := v.schema.ValidateJSON(data)
	if !evaluation.IsValid() {
		return &Result{
			Valid:      false,
			Violations: collectViolations(evaluation.ToList()),
		}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		// A schema-valid document that fails to decode indicates a
		// mismatch between Schema and the Manifest types
		return &Result{
			Valid:      false,
			Violations: []Violation{{Path: "/", Message: err.Error()}},
		}
	}

	return &Result{Valid: true, Manifest: &m}
}

// collectViolations flattens the hierarchical evaluation output into an
// ordered violation list. Map-keyed messages are sorted by keyword so
// repeated validations of the same document produce identical output.
func collectViolations(list *jsonschema.List) []Violation {
	var out []Violation
	walkList(list, &out)
	return out
}

func walkList(list *jsonschema.List, out *[]Violation) {
	if list == nil {
		return
	}

	// Nodes with failing children repeat an aggregate message; only
	// leaf failures carry the actionable reason
	if !list.Valid && len(list.Errors) > 0 && !hasInvalidDetail(list) {
		path := list.InstanceLocation
		if path == "" {
			path = "/"
		}

		keywords := make([]string, 0, len(list.Errors))
		for k := range list.Errors {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)

		for _, k := range keywords {
			*out = append(*out, Violation{Path: path, Message: list.Errors[k]})
		}
	}

	for i := range list.Details {
		walkList(&list.Details[i], out)
	}
}

func hasInvalidDetail(list *jsonschema.List) bool {
	for i := range list.Details {
		if !list.Details[i].Valid {
			return true
		}
	}
	return false
}
