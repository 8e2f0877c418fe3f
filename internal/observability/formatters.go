// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-normalizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// writeList writes at most limit items under a heading
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintExtractedText outputs document metadata and the first lines of the extracted text.
func (p *Printer) PrintExtractedText(name string, text *types.ExtractedText) {
	if text == nil {
		return
	}

	meta := text.Metadata
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:   %s\n", meta.Format))
	if meta.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", meta.Title))
	}
	if meta.Author != "" {
		sb.WriteString(fmt.Sprintf("Author:   %s\n", meta.Author))
	}
	if meta.PageCount > 0 {
		sb.WriteString(fmt.Sprintf("Pages:    %d\n", meta.PageCount))
	}
	sb.WriteString(fmt.Sprintf("Words:    %d\n\n", meta.WordCount))

	writeList(&sb, "Warnings", meta.Warnings, maxItemsToShow)

	lines := strings.Split(text.Text, "\n")
	count := min(len(lines), maxItemsToShow)
	sb.WriteString("Preview:\n")
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %s\n", lines[i]))
	}
	if len(lines) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more lines\n", len(lines)-maxItemsToShow))
	}

	title := "EXTRACTED TEXT"
	if name != "" {
		title += ": " + name
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobDescription outputs a human-readable summary of the parsed job posting.
func (p *Printer) PrintJobDescription(record *types.JobDescriptionRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", record.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", record.Title))
	for _, field := range []struct{ label, value string }{
		{"Location", record.Location},
		{"Type", record.EmploymentType},
		{"Mode", record.WorkMode},
		{"Level", record.Seniority},
	} {
		if field.value != "" {
			sb.WriteString(fmt.Sprintf("%-9s %s\n", field.label+":", field.value))
		}
	}
	sb.WriteString("\n")

	writeList(&sb, "Requirements", record.Requirements, maxItemsToShow)
	writeList(&sb, "Responsibilities", record.Responsibilities, 3)
	writeList(&sb, "Nice-to-haves", record.NiceToHave, 3)
	if len(record.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(record.Skills, ", ")))
	}

	p.printBox("PARSED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUniversalResume outputs the section counts of a mapped resume.
func (p *Printer) PrintUniversalResume(resume *types.UniversalResumeData) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	info := resume.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name:     %s\n", info.FullName))
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	}
	sb.WriteString(fmt.Sprintf("Language: %s\n\n", resume.Metadata.Language))

	skills := len(resume.Skills.Languages) + len(resume.Skills.Frameworks) + len(resume.Skills.Tools) + len(resume.Skills.Other)
	sb.WriteString(fmt.Sprintf("Experience:     %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(resume.Projects)))
	sb.WriteString(fmt.Sprintf("Skills:         %d\n", skills))
	sb.WriteString(fmt.Sprintf("Languages:      %d\n", len(resume.Languages)))
	sb.WriteString(fmt.Sprintf("Other sections: %d\n", len(resume.OtherSections)))

	if len(resume.Metadata.Warnings) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Warnings", resume.Metadata.Warnings, maxItemsToShow)
	}

	p.printBox("MAPPED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs every violation of a schema check.
func (p *Printer) PrintValidationReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	if report.Valid {
		p.printBox("VALIDATION: "+report.Schema, "✓ valid")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d violation(s):\n\n", len(report.Violations)))
	for _, v := range report.Violations {
		sb.WriteString(fmt.Sprintf("✗ %s\n", v.Field))
		sb.WriteString(fmt.Sprintf("    %s\n", v.Details))
	}

	p.printBox("VALIDATION: "+report.Schema, strings.TrimSuffix(sb.String(), "\n"))
}
