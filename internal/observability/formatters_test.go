package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-normalizer/internal/types"
)

func TestPrintExtractedText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractedText("cv.pdf", &types.ExtractedText{
		Text: "Jane Doe\nEngineer\nAcme\nGo\nKubernetes\nChess\nMore",
		Metadata: types.DocumentMetadata{
			Format:    types.FormatPDF,
			Title:     "CV",
			PageCount: 2,
			WordCount: 7,
			Warnings:  []string{"document has no core properties"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED TEXT: cv.pdf")
	assert.Contains(t, output, "Format:   pdf")
	assert.Contains(t, output, "Pages:    2")
	assert.Contains(t, output, "Words:    7")
	assert.Contains(t, output, "document has no core properties")
	assert.Contains(t, output, "... and 2 more lines")
	assert.NotContains(t, output, "Author:")
}

func TestPrintJobDescription(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDescription(&types.JobDescriptionRecord{
		Title:        "Senior Engineer",
		Company:      "Acme Corp",
		WorkMode:     "remote",
		Requirements: []string{"Go", "SQL", "Kafka", "gRPC", "Docker", "Linux"},
		Skills:       []string{"Go", "Kafka"},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB DESCRIPTION")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Mode:     remote")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Skills: Go, Kafka")
	assert.NotContains(t, output, "Location:")
}

func TestPrintUniversalResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUniversalResume(&types.UniversalResumeData{
		Metadata:     types.ResumeMetadata{Language: "en", Warnings: []string{"experience[1] is not an object; skipped"}},
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"},
		Experience:   []types.UniversalExperience{{Company: "Acme"}},
		Skills:       types.SkillSet{Languages: []string{"Go"}, Other: []string{"Chess"}},
	})
	output := buf.String()

	assert.Contains(t, output, "MAPPED RESUME")
	assert.Contains(t, output, "Name:     Jane Doe")
	assert.Contains(t, output, "Experience:     1")
	assert.Contains(t, output, "Skills:         2")
	assert.Contains(t, output, "is not an object")
}

func TestPrintValidationReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(&types.ValidationReport{
		Schema: "resume.schema.json",
		Violations: []types.Violation{
			{Field: "header.fullName", Type: "required", Details: "fullName is required"},
			{Field: "experience", Type: "array_min_items", Details: "Array must have at least 1 items"},
		},
	})
	output := buf.String()
	assert.Contains(t, output, "VALIDATION: resume.schema.json")
	assert.Contains(t, output, "2 violation(s)")
	assert.Contains(t, output, "✗ header.fullName")

	buf.Reset()
	p.PrintValidationReport(&types.ValidationReport{Schema: "generation.schema.json", Valid: true})
	assert.Contains(t, buf.String(), "✓ valid")
}

func TestPrinters_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractedText("x", nil)
	p.PrintJobDescription(nil)
	p.PrintUniversalResume(nil)
	p.PrintValidationReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.True(t, utf8.ValidString(line))
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}
