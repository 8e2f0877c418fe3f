// Package llm - contract.go validates structured output returned by external text generators.
package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-normalizer/internal/schemas"
	"github.com/jonathan/resume-normalizer/internal/types"
	defs "github.com/jonathan/resume-normalizer/schemas"
)

// MalformedOutputError is returned when a generator response does not satisfy the generation contract
type MalformedOutputError struct {
	Detail string
	Cause  error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed generation output: %s: %v", e.Detail, e.Cause)
	}
	return fmt.Sprintf("malformed generation output: %s", e.Detail)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

func malformed(format string, args ...any) *MalformedOutputError {
	return &MalformedOutputError{Detail: fmt.Sprintf(format, args...)}
}

// ParseStructuredOutput decodes a raw generator reply and validates it against the generation contract.
// Markdown fences and surrounding prose are removed before decoding.
func ParseStructuredOutput(raw string) (*types.AIGenerationResponse, error) {
	cleaned := CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, malformed("response is empty")
	}

	decoder := json.NewDecoder(strings.NewReader(cleaned))
	decoder.UseNumber()

	var candidate any
	if err := decoder.Decode(&candidate); err != nil {
		return nil, &MalformedOutputError{Detail: "response is not valid JSON", Cause: err}
	}

	return ValidateStructuredOutput(candidate)
}

// ValidateStructuredOutput checks an already-decoded candidate against the generation contract.
// Values are never coerced: a numeric text or a null label is a violation.
func ValidateStructuredOutput(candidate any) (*types.AIGenerationResponse, error) {
	candidate, err := decodeCandidate(candidate)
	if err != nil {
		return nil, err
	}

	obj, ok := candidate.(map[string]any)
	if !ok {
		return nil, malformed("expected an object, got %s", describe(candidate))
	}

	rawOptions, present := obj["options"]
	if !present {
		return nil, malformed("options is required")
	}
	list, ok := rawOptions.([]any)
	if !ok {
		return nil, malformed("options must be a list, got %s", describe(rawOptions))
	}
	if len(list) < types.MinGenerationOptions {
		return nil, malformed("options must contain at least %d entry", types.MinGenerationOptions)
	}
	if len(list) > types.MaxGenerationOptions {
		return nil, malformed("options must contain at most %d entries, got %d", types.MaxGenerationOptions, len(list))
	}

	resp := &types.AIGenerationResponse{Options: make([]types.GenerationOption, 0, len(list))}
	for i, entry := range list {
		option, err := validateOption(i, entry)
		if err != nil {
			return nil, err
		}
		resp.Options = append(resp.Options, option)
	}

	if rawReasoning, present := obj["reasoning"]; present {
		reasoning, ok := rawReasoning.(string)
		if !ok {
			return nil, malformed("reasoning must be a string, got %s", describe(rawReasoning))
		}
		resp.Reasoning = reasoning
	}

	// The embedded schema is the published contract; both checks must agree.
	if err := schemas.ValidateAgainst(defs.GenerationSchemaFile, obj); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &MalformedOutputError{Detail: "response violates generation schema", Cause: err}
		}
		return nil, err
	}

	return resp, nil
}

func validateOption(index int, entry any) (types.GenerationOption, error) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return types.GenerationOption{}, malformed("options[%d] must be an object, got %s", index, describe(entry))
	}

	rawText, present := obj["text"]
	if !present {
		return types.GenerationOption{}, malformed("options[%d].text is required", index)
	}
	text, ok := rawText.(string)
	if !ok {
		return types.GenerationOption{}, malformed("options[%d].text must be a string, got %s", index, describe(rawText))
	}
	if strings.TrimSpace(text) == "" {
		return types.GenerationOption{}, malformed("options[%d].text must not be empty", index)
	}

	option := types.GenerationOption{Text: text}
	if rawLabel, present := obj["label"]; present {
		label, ok := rawLabel.(string)
		if !ok {
			return types.GenerationOption{}, malformed("options[%d].label must be a string, got %s", index, describe(rawLabel))
		}
		option.Label = label
	}
	return option, nil
}

// ExtractSingleText returns the text of the first option, or "" for an empty response
func ExtractSingleText(resp *types.AIGenerationResponse) string {
	if resp == nil || len(resp.Options) == 0 {
		return ""
	}
	return resp.Options[0].Text
}

// decodeCandidate turns raw JSON and typed values into generic JSON values
func decodeCandidate(candidate any) (any, error) {
	var raw []byte
	switch v := candidate.(type) {
	case nil, map[string]any, []any, string, bool, json.Number, float64:
		return candidate, nil
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, &MalformedOutputError{Detail: "candidate cannot be encoded as JSON", Cause: err}
		}
		raw = encoded
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, &MalformedOutputError{Detail: "candidate is not valid JSON", Cause: err}
	}
	return decoded, nil
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
