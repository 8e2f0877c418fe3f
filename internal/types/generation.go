// Package types provides type definitions for structured data used throughout the resume-normalizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AIGenerationResponse is the structured output an external text-generation step must return
// when asked for resume bullet or summary improvements.
type AIGenerationResponse struct {
	Options   []GenerationOption `json:"options"`
	Reasoning string             `json:"reasoning,omitempty"`
}

// GenerationOption is one suggested text
type GenerationOption struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// Bounds of the generation contract
const (
	MinGenerationOptions = 1
	MaxGenerationOptions = 3
)
