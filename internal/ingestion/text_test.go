package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: " \t\n\r\n\f ", expected: ""},
		{name: "collapse spaces", input: "Line    with    multiple    spaces", expected: "Line with multiple spaces"},
		{name: "tabs", input: "Skills:\tGo\t\tPython", expected: "Skills: Go Python"},
		{name: "line endings", input: "Line 1\r\nLine 2\rLine 3\nLine 4", expected: "Line 1\nLine 2\nLine 3\nLine 4"},
		{name: "excessive blank lines", input: "Line 1\n\n\n\n\nLine 2", expected: "Line 1\n\nLine 2"},
		{name: "blank lines with spaces", input: "Line 1\n  \n \t \n  \nLine 2", expected: "Line 1\n\nLine 2"},
		{name: "two newlines kept", input: "Line 1\n\nLine 2", expected: "Line 1\n\nLine 2"},
		{name: "form feed page break", input: "Page one\fPage two", expected: "Page one Page two"},
		{name: "form feed line", input: "Page one\n\f\nPage two", expected: "Page one\n\nPage two"},
		{name: "vertical tab", input: "a\vb", expected: "a b"},
		{name: "control characters", input: "a\x00b\x1bc", expected: "a b c"},
		{name: "non-breaking space", input: "Jane\u00a0\u00a0Doe", expected: "Jane Doe"},
		{name: "unicode spaces", input: "Jane\u2003Doe\u3000Smith", expected: "Jane Doe Smith"},
		{name: "zero width removed", input: "Ja\u200bne D\u200doe\ufeff", expected: "Jane Doe"},
		{name: "trim lines", input: "   indented line   \n\ttabbed", expected: "indented line\ntabbed"},
		{name: "trim whole", input: "\n\n\n  Jane Doe  \n\n\n", expected: "Jane Doe"},
		{name: "bullets kept", input: "- Item 1\n•   Item 2", expected: "- Item 1\n• Item 2"},
		{name: "special characters", input: "Email: test@example.com | Phone: (555) 123-4567", expected: "Email: test@example.com | Phone: (555) 123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Jane Doe",
		"Test content   with   spaces\n\n\nMultiple   blank   lines",
		"# Title\r\n\r\n\r\n## Subtitle\r\n- item\f\f\n\n\n\n",
		"\u00a0\u200b \t\v\n\n   text  \n\n\n\nmore",
		"a\n \n \n \nb\n\n\x00\n\nc",
		strings.Repeat("word \n\n\n", 50),
		"\xff\xfe invalid utf8 \xff",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalize_NoExcessiveBlankLines(t *testing.T) {
	result := Normalize("A\n\n\n\nB\r\n\r\n\r\nC\n\f\n\f\nD")

	assert.NotContains(t, result, "\n\n\n")
	assert.NotContains(t, result, "\r")
	assert.NotContains(t, result, "\f")
	assert.Equal(t, "A\n\nB\n\nC\n\nD", result)
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "Senior   Engineer\n\n\n\nAcme\tCorp"

	first := Normalize(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Normalize(input))
	}
}
