// Package schemas provides JSON Schema validation of resume documents against the embedded canonical schema.
package schemas

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-normalizer/internal/types"
	defs "github.com/jonathan/resume-normalizer/schemas"
)

// ValidationError represents a schema validation error with field paths.
// It always carries every violation found, never only the first.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Fields returns the distinct field paths that failed, in report order
func (ve *ValidationError) Fields() []string {
	seen := make(map[string]bool, len(ve.Errors))
	fields := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		if !seen[err.Field] {
			seen[err.Field] = true
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// compiled schemas are read-only after construction and safe to share
var (
	compiledMu sync.Mutex
	compiled   = make(map[string]*gojsonschema.Schema)
)

// load compiles an embedded schema document once
func load(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[name]; ok {
		return schema, nil
	}

	data, err := defs.Read(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema not embedded", Cause: err}
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema does not compile", Cause: err}
	}

	compiled[name] = schema
	return schema, nil
}

// Validate checks a candidate resume against the canonical Resume JSON schema.
// The candidate may be a decoded JSON value, a Go struct, or raw JSON bytes.
// All violations are reported together in a *ValidationError; on success the
// candidate is returned decoded as a CanonicalResume.
func Validate(candidate any) (*types.CanonicalResume, error) {
	if err := ValidateAgainst(defs.ResumeSchemaFile, candidate); err != nil {
		return nil, err
	}

	raw, err := toJSON(candidate)
	if err != nil {
		return nil, err
	}

	var resume types.CanonicalResume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Type:    "decode",
			Message: err.Error(),
		}}}
	}

	return &resume, nil
}

// ValidateJSON validates raw JSON content against the canonical Resume JSON schema
func ValidateJSON(content []byte) (*types.CanonicalResume, error) {
	return Validate(json.RawMessage(content))
}

// ValidateResume validates an in-memory canonical resume, e.g. before it leaves the API boundary
func ValidateResume(resume *types.CanonicalResume) error {
	if resume == nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Type: "invalid_type", Message: "resume is nil"}}}
	}
	return ValidateAgainst(defs.ResumeSchemaFile, resume)
}

// ValidateAgainst validates a candidate against one of the embedded schema documents
func ValidateAgainst(schemaName string, candidate any) error {
	schema, err := load(schemaName)
	if err != nil {
		return err
	}

	raw, err := toJSON(candidate)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Type:    "invalid_json",
			Message: err.Error(),
		}}}
	}

	if result.Valid() {
		return nil
	}

	return buildValidationError(result.Errors())
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	return buildValidationError(result.Errors())
}

// buildValidationError converts gojsonschema results into a sorted, de-duplicated ValidationError
func buildValidationError(results []gojsonschema.ResultError) *ValidationError {
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(results)),
	}

	seen := make(map[string]bool, len(results))
	for _, desc := range results {
		fe := FieldError{
			Field:   fieldPath(desc),
			Type:    desc.Type(),
			Message: desc.Description(),
		}
		key := fe.Field + "\x00" + fe.Type + "\x00" + fe.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		validationErr.Errors = append(validationErr.Errors, fe)
	}

	// gojsonschema walks properties in map order
	sort.SliceStable(validationErr.Errors, func(i, j int) bool {
		return validationErr.Errors[i].Field < validationErr.Errors[j].Field
	})

	return validationErr
}

// fieldPath returns the dotted path of the offending field. Missing required
// properties are reported on the property itself rather than on its parent.
func fieldPath(desc gojsonschema.ResultError) string {
	root := gojsonschema.STRING_ROOT_SCHEMA_PROPERTY

	field := root
	if ctx := desc.Context(); ctx != nil {
		field = strings.TrimPrefix(ctx.String(), root+".")
	}
	if field == "" {
		field = root
	}

	if desc.Type() != "required" {
		return field
	}

	property, _ := desc.Details()["property"].(string)
	switch {
	case property == "":
		return field
	case field == root:
		return property
	default:
		return field + "." + property
	}
}

// toJSON encodes a candidate for the schema loader, passing raw JSON through untouched
func toJSON(candidate any) ([]byte, error) {
	switch v := candidate.(type) {
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	}

	raw, err := json.Marshal(candidate)
	if err != nil {
		return nil, &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Type:    "invalid_type",
			Message: fmt.Sprintf("candidate cannot be encoded as JSON: %v", err),
		}}}
	}
	return raw, nil
}

// ResumeSchema returns the raw canonical resume schema document
func ResumeSchema() ([]byte, error) {
	return defs.Read(defs.ResumeSchemaFile)
}

// GenerationSchema returns the raw structured-output schema document
func GenerationSchema() ([]byte, error) {
	return defs.Read(defs.GenerationSchemaFile)
}
