// Package types provides type definitions for structured data used throughout the resume-normalizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single schema validation failure
type Violation struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// ValidationReport is the outcome of checking one document against an embedded schema.
// Violations is never null so consumers can range over it unconditionally.
type ValidationReport struct {
	Schema     string      `json:"schema"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// AffectedFields returns the distinct field paths that failed, in report order
func (r *ValidationReport) AffectedFields() []string {
	seen := make(map[string]bool, len(r.Violations))
	fields := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}
