// Package llm - extractor.go builds prompt contracts for external structured-output generators.
package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-normalizer/internal/prompts"
	"github.com/jonathan/resume-normalizer/internal/schemas"
	"github.com/jonathan/resume-normalizer/internal/types"
)

// ExtractionSchema defines the structure an external model must return.
// It is derived from the embedded JSON Schema documents so the prompt and the validator cannot drift.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "CanonicalResume", "GenerationResponse")
	Description string        // System prompt preamble describing the task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the expected output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[\"string\"]", "[{...}]"
	Description string // Description for the model, including constraints
	Required    bool   // Whether this field is required
}

// jsonSchemaNode is the subset of draft-07 the prompt renderer understands
type jsonSchemaNode struct {
	Ref         string                     `json:"$ref"`
	Type        string                     `json:"type"`
	Description string                     `json:"description"`
	Required    []string                   `json:"required"`
	Properties  map[string]*jsonSchemaNode `json:"properties"`
	Items       *jsonSchemaNode            `json:"items"`
	Definitions map[string]*jsonSchemaNode `json:"definitions"`
	Pattern     string                     `json:"pattern"`
	Format      string                     `json:"format"`
	MinLength   *int                       `json:"minLength"`
	MaxLength   *int                       `json:"maxLength"`
	MinItems    *int                       `json:"minItems"`
	MaxItems    *int                       `json:"maxItems"`
}

const definitionsPrefix = "#/definitions/"

// SchemaFromJSONSchema converts a JSON Schema document into an ExtractionSchema.
// Top-level properties become fields, required ones first and the rest alphabetically.
func SchemaFromJSONSchema(name, description string, document []byte) (ExtractionSchema, error) {
	var root jsonSchemaNode
	if err := json.Unmarshal(document, &root); err != nil {
		return ExtractionSchema{}, &schemas.SchemaLoadError{Path: name, Message: "schema is not valid JSON", Cause: err}
	}

	r := &schemaRenderer{definitions: root.Definitions}

	required := make(map[string]bool, len(root.Required))
	for _, field := range root.Required {
		required[field] = true
	}

	names := make([]string, 0, len(root.Properties))
	for field := range root.Properties {
		names = append(names, field)
	}
	sort.Slice(names, func(i, j int) bool {
		if required[names[i]] != required[names[j]] {
			return required[names[i]]
		}
		return names[i] < names[j]
	})

	fields := make([]SchemaField, 0, len(names))
	for _, field := range names {
		node := root.Properties[field]
		fields = append(fields, SchemaField{
			Name:        field,
			Type:        r.typeHint(node, 0),
			Description: r.describe(node),
			Required:    required[field],
		})
	}

	if description == "" {
		description = root.Description
	}

	return ExtractionSchema{Name: name, Description: description, Fields: fields}, nil
}

type schemaRenderer struct {
	definitions map[string]*jsonSchemaNode
}

// resolve follows a local definitions reference, merging the referring node's description
func (r *schemaRenderer) resolve(node *jsonSchemaNode) *jsonSchemaNode {
	for depth := 0; node != nil && node.Ref != "" && depth < 8; depth++ {
		target, ok := r.definitions[strings.TrimPrefix(node.Ref, definitionsPrefix)]
		if !ok {
			return node
		}
		merged := *target
		if node.Description != "" {
			merged.Description = node.Description
		}
		node = &merged
	}
	return node
}

// maxHintDepth bounds nested object rendering in type hints
const maxHintDepth = 2

func (r *schemaRenderer) typeHint(node *jsonSchemaNode, depth int) string {
	node = r.resolve(node)
	if node == nil {
		return `"string"`
	}

	switch node.Type {
	case "array":
		return "[" + r.typeHint(node.Items, depth) + "]"
	case "object":
		if len(node.Properties) == 0 || depth >= maxHintDepth {
			return `{"key": "value"}`
		}
		keys := make([]string, 0, len(node.Properties))
		for key := range node.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%q: %s", key, r.typeHint(node.Properties[key], depth+1)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case "boolean":
		return "true|false"
	case "integer", "number":
		return "number"
	default:
		return `"string"`
	}
}

// describe renders the node description plus its constraints in plain words
func (r *schemaRenderer) describe(node *jsonSchemaNode) string {
	node = r.resolve(node)
	if node == nil {
		return ""
	}

	var notes []string
	if node.Description != "" {
		notes = append(notes, strings.TrimSuffix(node.Description, "."))
	}
	notes = append(notes, r.constraints(node)...)

	if node.Type == "array" && node.Items != nil {
		items := r.resolve(node.Items)
		if items != nil && len(items.Required) > 0 {
			required := append([]string(nil), items.Required...)
			sort.Strings(required)
			notes = append(notes, "each entry requires "+strings.Join(required, ", "))
		}
		if items != nil && items.Type != "object" {
			for _, c := range r.constraints(items) {
				notes = append(notes, "each entry "+c)
			}
		}
	}

	return strings.Join(notes, "; ")
}

func (r *schemaRenderer) constraints(node *jsonSchemaNode) []string {
	var out []string
	switch {
	case node.MinItems != nil && node.MaxItems != nil:
		out = append(out, fmt.Sprintf("between %d and %d entries", *node.MinItems, *node.MaxItems))
	case node.MinItems != nil && *node.MinItems > 0:
		out = append(out, fmt.Sprintf("at least %d entries", *node.MinItems))
	case node.MaxItems != nil:
		out = append(out, fmt.Sprintf("at most %d entries", *node.MaxItems))
	}
	if node.MinLength != nil && *node.MinLength > 0 {
		out = append(out, "must not be empty")
	}
	if node.MaxLength != nil {
		out = append(out, fmt.Sprintf("at most %d characters", *node.MaxLength))
	}
	switch node.Pattern {
	case "", `\S`:
	case `^\d{4}-\d{2}$`:
		out = append(out, "formatted YYYY-MM")
	case `^(\d{4}-\d{2}|Present)$`:
		out = append(out, `formatted YYYY-MM or "Present"`)
	default:
		out = append(out, "must match "+node.Pattern)
	}
	if node.Format != "" {
		out = append(out, "a valid "+node.Format)
	}
	return out
}

// BuildExtractionPrompt constructs the model prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString(prompts.MustGet(prompts.ContractsFile, "instructions"))
	sb.WriteString("\n")

	// Input text
	if inputText != "" {
		sb.WriteString("\nInput text:\n\"\"\"\n")
		sb.WriteString(inputText)
		sb.WriteString("\n\"\"\"\n")
	}

	return sb.String()
}

// --- Predefined Contracts ---

// ResumeExtractionContract returns the contract for turning resume text into a canonical resume.
func ResumeExtractionContract() (ExtractionSchema, error) {
	document, err := schemas.ResumeSchema()
	if err != nil {
		return ExtractionSchema{}, err
	}
	description, err := prompts.Render(prompts.ContractsFile, "resume-extraction", map[string]string{
		"DateFormat": "YYYY-MM",
		"Present":    types.PresentEndDate,
	})
	if err != nil {
		return ExtractionSchema{}, err
	}
	return SchemaFromJSONSchema("CanonicalResume", description, document)
}

// GenerationContract returns the contract for bullet or summary rewrite suggestions.
func GenerationContract() (ExtractionSchema, error) {
	document, err := schemas.GenerationSchema()
	if err != nil {
		return ExtractionSchema{}, err
	}
	description, err := prompts.Render(prompts.ContractsFile, "generation", map[string]string{
		"MinOptions": strconv.Itoa(types.MinGenerationOptions),
		"MaxOptions": strconv.Itoa(types.MaxGenerationOptions),
	})
	if err != nil {
		return ExtractionSchema{}, err
	}
	return SchemaFromJSONSchema("GenerationResponse", description, document)
}
