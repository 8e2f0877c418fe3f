package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_PreambleText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "As requested, here is the JSON:\n{\"options\": []}",
			expected: `{"options": []}`,
		},
		{
			name:     "conversational preamble",
			input:    "I rewrote the bullet three ways. Here's the structured output:\n\n{\"options\": [{\"text\": \"Led migration\"}], \"reasoning\": \"shorter\"}",
			expected: `{"options": [{"text": "Led migration"}], "reasoning": "shorter"}`,
		},
		{
			name:     "preamble with multiple sentences",
			input:    "I reviewed the bullet. It lacked a metric. Here is the result: {\"options\": [{\"text\": \"Cut latency 40%\"}]}",
			expected: `{"options": [{"text": "Cut latency 40%"}]}`,
		},
		{
			name:     "preamble before JSON array",
			input:    "Here are the items:\n[\"item1\", \"item2\"]",
			expected: `["item1", "item2"]`,
		},
		{
			name:     "JSON with trailing text",
			input:    "{\"key\": \"value\"}\n\nLet me know if you need anything else!",
			expected: `{"key": "value"}`,
		},
		{
			name:     "nested objects",
			input:    "Output:\n{\"outer\": {\"inner\": \"value\"}}",
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "JSON with escaped quotes",
			input:    "Result: {\"message\": \"He said \\\"hello\\\"\"}",
			expected: `{"message": "He said \"hello\""}`,
		},
		{
			name:     "fenced block with preamble inside",
			input:    "```json\nSure:\n{\"options\": [{\"text\": \"a\"}]}\n```",
			expected: `{"options": [{"text": "a"}]}`,
		},
		{
			name:     "no JSON at all",
			input:    "  I cannot help with that.  ",
			expected: "I cannot help with that.",
		},
		{
			name:     "unbalanced object is returned as is",
			input:    "{\"options\": [",
			expected: `{"options": [`,
		},
		{
			name:     "deeply nested",
			input:    "Here: {\"a\": {\"b\": {\"c\": {\"d\": \"deep\"}}}}",
			expected: `{"a": {"b": {"c": {"d": "deep"}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_BalancedExtraction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "brace inside string after preamble",
			input:    `Here you go: {"options": [{"text": "Wrap {placeholders} and ] brackets"}]} Thanks!`,
			expected: `{"options": [{"text": "Wrap {placeholders} and ] brackets"}]}`,
		},
		{
			name:     "escaped backslash before closing quote",
			input:    `Result: {"path": "C:\\", "note": "}"} done`,
			expected: `{"path": "C:\\", "note": "}"}`,
		},
		{
			name:     "array of options after preamble",
			input:    "Options:\n[{\"text\": \"a\"}, {\"text\": \"b\"}] end",
			expected: `[{"text": "a"}, {"text": "b"}]`,
		},
		{
			name:     "bracket inside string in array",
			input:    `Result: ["a]b", "c"] trailing`,
			expected: `["a]b", "c"]`,
		},
		{
			name:     "fenced array",
			input:    "```json\n[\"a\", \"b\"]\n```",
			expected: `["a", "b"]`,
		},
		{
			name:     "unbalanced array after preamble is returned trimmed",
			input:    ` Here: ["a", `,
			expected: `Here: ["a",`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple object",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "nested objects",
			input:    `{"outer": {"inner": "value"}}`,
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "object with array",
			input:    `{"items": [1, 2, 3]}`,
			expected: `{"items": [1, 2, 3]}`,
		},
		{
			name:     "object with trailing text",
			input:    `{"key": "value"} and some more text`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "string with braces inside",
			input:    `{"template": "Hello {name}!"}`,
			expected: `{"template": "Hello {name}!"}`,
		},
		{
			name:     "unbalanced",
			input:    `{"key": {"inner": 1}`,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with brace",
			input:    "not json",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple array",
			input:    `["a", "b", "c"]`,
			expected: `["a", "b", "c"]`,
		},
		{
			name:     "nested arrays",
			input:    `[[1, 2], [3, 4]]`,
			expected: `[[1, 2], [3, 4]]`,
		},
		{
			name:     "array of objects",
			input:    `[{"id": 1}, {"id": 2}]`,
			expected: `[{"id": 1}, {"id": 2}]`,
		},
		{
			name:     "array with trailing text",
			input:    `[1, 2, 3] extra stuff`,
			expected: `[1, 2, 3]`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with bracket",
			input:    "not array",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONArray(tt.input))
		})
	}
}
