package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-normalizer/internal/config"
	"github.com/jonathan/resume-normalizer/internal/ingestion"
	"github.com/jonathan/resume-normalizer/internal/logger"
	"github.com/jonathan/resume-normalizer/internal/mapping"
	"github.com/jonathan/resume-normalizer/internal/types"
)

func textDocument(name, text string) types.RawDocument {
	return types.RawDocument{
		Data:     []byte(text),
		MIMEType: types.MIMETypePlainText,
		Filename: name,
		Size:     int64(len(text)),
	}
}

func TestNew_Defaults(t *testing.T) {
	p := New(nil)
	require.NotNil(t, p.extractor)
	assert.Equal(t, DefaultConcurrency, p.Concurrency())
	assert.Equal(t, types.MaxDocumentSize, p.extractor.MaxSize())

	assert.Equal(t, 2, New(nil, WithConcurrency(2)).Concurrency())
	assert.Equal(t, DefaultConcurrency, New(nil, WithConcurrency(0)).Concurrency())
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.Concurrency = 7
	cfg.Extraction.MaxUploadBytes = 1024

	p := NewFromConfig(cfg, logger.NewNop())
	assert.Equal(t, 7, p.Concurrency())
	assert.Equal(t, int64(1024), p.extractor.MaxSize())

	assert.NotNil(t, NewFromConfig(nil, nil))
}

func TestIngest_NormalizesText(t *testing.T) {
	p := New(nil)

	got, err := p.Ingest(context.Background(), textDocument("cv.txt", "Jane  Doe\r\n\r\n\r\n\r\nSenior\tEngineer\f"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSenior Engineer", got.Text)
	assert.Equal(t, 4, got.Metadata.WordCount)
	assert.Equal(t, types.FormatPlainText, got.Metadata.Format)
}

func TestIngest_PropagatesBoundaryErrors(t *testing.T) {
	p := New(ingestion.NewExtractor(ingestion.WithMaxSize(8)))

	_, err := p.Ingest(context.Background(), textDocument("big.txt", "more than eight bytes"))
	var tooLarge *ingestion.DocumentTooLargeError
	require.ErrorAs(t, err, &tooLarge)

	_, err = p.Ingest(context.Background(), types.RawDocument{Data: []byte("x"), MIMEType: "image/png", Size: 1})
	var unsupported *ingestion.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
}

func TestIngestJobDescription(t *testing.T) {
	posting := strings.Join([]string{
		"Senior Backend Engineer at Acme Corp",
		"",
		"Requirements:",
		"- 5+ years of Go",
		"- Experience with Kubernetes",
	}, "\n")

	record, err := New(nil).IngestJobDescription(context.Background(), textDocument("job.txt", posting))
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", record.Title)
	assert.Equal(t, "Acme Corp", record.Company)
	assert.Equal(t, []string{"5+ years of Go", "Experience with Kubernetes"}, record.Requirements)
	assert.Contains(t, record.Skills, "Go")
	assert.Contains(t, record.Skills, "Kubernetes")
}

func TestIngestBatch_IsolatesFailures(t *testing.T) {
	docs := []types.RawDocument{
		textDocument("a.txt", "first document"),
		{Data: []byte("%PDF-1.4 broken"), MIMEType: types.MIMETypePDF, Filename: "b.pdf", Size: 15},
		{Data: []byte("x"), MIMEType: "image/png", Filename: "c.png", Size: 1},
		textDocument("d.txt", "fourth   document here"),
	}

	results := New(nil, WithConcurrency(2)).IngestBatch(context.Background(), docs)
	require.Len(t, results, len(docs))

	ids := make(map[string]bool)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, docs[i].Filename, r.Filename)
		assert.NotEmpty(t, r.DocumentID)
		ids[r.DocumentID] = true
	}
	assert.Len(t, ids, len(docs))

	require.NoError(t, results[0].Err)
	assert.Equal(t, "first document", results[0].Text.Text)

	var extractionErr *ingestion.ExtractionError
	assert.ErrorAs(t, results[1].Err, &extractionErr)
	assert.Nil(t, results[1].Text)

	var unsupported *ingestion.UnsupportedFormatError
	assert.ErrorAs(t, results[2].Err, &unsupported)

	require.NoError(t, results[3].Err)
	assert.Equal(t, "fourth document here", results[3].Text.Text)
	assert.Equal(t, 3, results[3].Text.Metadata.WordCount)
}

func TestIngestBatch_Concurrent(t *testing.T) {
	docs := make([]types.RawDocument, 50)
	for i := range docs {
		docs[i] = textDocument("doc.txt", strings.Repeat("word ", i+1))
	}

	results := New(nil, WithConcurrency(8)).IngestBatch(context.Background(), docs)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, i+1, r.Text.Metadata.WordCount)
	}
}

func TestIngestBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := New(nil).IngestBatch(ctx, []types.RawDocument{textDocument("a.txt", "a"), textDocument("b.txt", "b")})
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Text)
	}
}

func TestIngestBatch_Empty(t *testing.T) {
	assert.Empty(t, New(nil).IngestBatch(context.Background(), nil))
}

func TestMapResume(t *testing.T) {
	p := New(nil)

	mapped, err := p.MapResumeJSON([]byte(`{
		"personalInfo": {"fullName": "Jane Doe", "email": "jane@x.com"},
		"experience": [{"company": "Acme", "position": "Engineer", "achievements": ["Shipped X"], "startDate": "2020-01", "endDate": "current"}],
		"education": [{"institution": "MIT", "degree": "BS"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", mapped.Universal.PersonalInfo.FullName)
	assert.Equal(t, "Engineer", mapped.Canonical.Experience[0].Title)

	report, err := p.ValidateResume(mapped.Canonical)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Violations)
	assert.NotNil(t, report.Violations)
}

func TestMapResume_InvalidInput(t *testing.T) {
	p := New(nil)

	_, err := p.MapResume([]any{"not", "an", "object"})
	var invalid *mapping.InvalidInputError
	require.ErrorAs(t, err, &invalid)

	_, err = p.MapResumeJSON([]byte("not json"))
	require.ErrorAs(t, err, &invalid)
}

func TestValidateResume_ReportsAllViolations(t *testing.T) {
	report, err := New(nil).ValidateResume(map[string]any{})
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Equal(t, "resume.schema.json", report.Schema)
	assert.ElementsMatch(t, []string{"education", "experience", "header", "metadata"}, report.AffectedFields())
}

func TestValidateGenerationOutput(t *testing.T) {
	p := New(nil)

	resp, report, err := p.ValidateGenerationOutput("```json\n{\"options\":[{\"text\":\"Improved bullet\"}]}\n```")
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, "Improved bullet", resp.Options[0].Text)

	resp, report, err = p.ValidateGenerationOutput(`{"options": []}`)
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.False(t, report.Valid)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "malformed_output", report.Violations[0].Type)
	assert.Contains(t, report.Violations[0].Details, "at least 1")
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.TXT")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	doc, err := LoadDocument(path, "")
	require.NoError(t, err)
	assert.Equal(t, types.MIMETypePlainText, doc.MIMEType)
	assert.Equal(t, "resume.TXT", doc.Filename)
	assert.Equal(t, int64(5), doc.Size)

	doc, err = LoadDocument(path, types.MIMETypePDF)
	require.NoError(t, err)
	assert.Equal(t, types.MIMETypePDF, doc.MIMEType)

	_, err = LoadDocument(filepath.Join(dir, "missing.pdf"), "")
	require.Error(t, err)
}

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		name string
		path string
		data []byte
		want string
	}{
		{"pdf extension", "a.pdf", nil, types.MIMETypePDF},
		{"docx extension", "a.DOCX", nil, types.MIMETypeDOCX},
		{"doc extension", "a.doc", nil, types.MIMETypeLegacyDoc},
		{"markdown", "notes.md", nil, types.MIMETypePlainText},
		{"pdf content without extension", "upload", []byte("%PDF-1.7\n"), types.MIMETypePDF},
		{"unknown", "upload.bin", []byte{0x00, 0x01}, "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMIMEType(tt.path, tt.data))
		})
	}
}
