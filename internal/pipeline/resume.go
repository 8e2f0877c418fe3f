package pipeline

import (
	"errors"

	"github.com/jonathan/resume-normalizer/internal/llm"
	"github.com/jonathan/resume-normalizer/internal/mapping"
	"github.com/jonathan/resume-normalizer/internal/schemas"
	"github.com/jonathan/resume-normalizer/internal/types"
	defs "github.com/jonathan/resume-normalizer/schemas"
)

// MappedResume holds both views produced from one structured input
type MappedResume struct {
	Universal *types.UniversalResumeData `json:"universal"`
	Canonical *types.CanonicalResume     `json:"canonical"`
}

// MapResume maps arbitrary structured resume data to the universal and canonical shapes.
// Only an input that is not an object fails; use ValidateResume to check the canonical view.
func (p *Pipeline) MapResume(parsed any) (*MappedResume, error) {
	universal, err := mapping.MapToUniversal(parsed)
	if err != nil {
		return nil, err
	}

	return p.mapped(universal), nil
}

// MapResumeJSON is MapResume for raw JSON bytes
func (p *Pipeline) MapResumeJSON(data []byte) (*MappedResume, error) {
	universal, err := mapping.MapJSON(data)
	if err != nil {
		return nil, err
	}
	return p.mapped(universal), nil
}

func (p *Pipeline) mapped(universal *types.UniversalResumeData) *MappedResume {
	if n := len(universal.Metadata.Warnings); n > 0 {
		p.log.Debugw("resume mapped with warnings", "warnings", n)
	}
	return &MappedResume{
		Universal: universal,
		Canonical: mapping.ToCanonical(universal),
	}
}

// ValidateResume checks a candidate against the canonical resume schema and reports every violation.
// The error is non-nil only when the schema itself could not be loaded.
func (p *Pipeline) ValidateResume(candidate any) (*types.ValidationReport, error) {
	return p.report(defs.ResumeSchemaFile, schemas.ValidateAgainst(defs.ResumeSchemaFile, candidate))
}

// ValidateGenerationOutput checks a raw generator reply against the structured-output contract
func (p *Pipeline) ValidateGenerationOutput(raw string) (*types.AIGenerationResponse, *types.ValidationReport, error) {
	resp, err := llm.ParseStructuredOutput(raw)
	if err == nil {
		return resp, &types.ValidationReport{Schema: defs.GenerationSchemaFile, Valid: true, Violations: []types.Violation{}}, nil
	}

	var malformedErr *llm.MalformedOutputError
	if !errors.As(err, &malformedErr) {
		return nil, nil, err
	}

	report := &types.ValidationReport{Schema: defs.GenerationSchemaFile, Violations: []types.Violation{}}
	var validationErr *schemas.ValidationError
	if errors.As(malformedErr.Cause, &validationErr) {
		report.Violations = violationsFrom(validationErr)
	} else {
		report.Violations = append(report.Violations, types.Violation{
			Field:   "(root)",
			Type:    "malformed_output",
			Details: malformedErr.Detail,
		})
	}
	return nil, report, nil
}

func (p *Pipeline) report(schemaName string, err error) (*types.ValidationReport, error) {
	report := &types.ValidationReport{Schema: schemaName, Violations: []types.Violation{}}
	if err == nil {
		report.Valid = true
		return report, nil
	}

	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, err
	}
	report.Violations = violationsFrom(validationErr)
	p.log.Debugw("schema violations", "schema", schemaName, "count", len(report.Violations))
	return report, nil
}

func violationsFrom(err *schemas.ValidationError) []types.Violation {
	out := make([]types.Violation, 0, len(err.Errors))
	for _, fe := range err.Errors {
		out = append(out, types.Violation{Field: fe.Field, Type: fe.Type, Details: fe.Message})
	}
	return out
}
