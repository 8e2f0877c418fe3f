package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-normalizer/internal/ingestion"
	"github.com/jonathan/resume-normalizer/internal/parsing"
	"github.com/jonathan/resume-normalizer/internal/types"
)

// BatchResult is the outcome for one document of IngestBatch.
// Exactly one of Text and Err is set.
type BatchResult struct {
	Index      int                  `json:"index"`
	DocumentID string               `json:"document_id"`
	Filename   string               `json:"filename,omitempty"`
	Text       *types.ExtractedText `json:"text,omitempty"`
	Err        error                `json:"-"`
}

// Ingest extracts a document and normalizes its text
func (p *Pipeline) Ingest(ctx context.Context, doc types.RawDocument) (*types.ExtractedText, error) {
	return p.ingest(ctx, uuid.NewString(), doc)
}

func (p *Pipeline) ingest(ctx context.Context, documentID string, doc types.RawDocument) (*types.ExtractedText, error) {
	log := p.log.With("document_id", documentID, "filename", doc.Filename, "mime_type", doc.MIMEType)
	start := time.Now()

	extracted, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		log.Warnw("document rejected", "duration", time.Since(start), "error", err)
		return nil, err
	}

	extracted.Text = ingestion.Normalize(extracted.Text)
	extracted.Metadata.WordCount = ingestion.CountWords(extracted.Text)

	log.Infow("document ingested",
		"duration", time.Since(start),
		"format", extracted.Metadata.Format,
		"words", extracted.Metadata.WordCount,
		"warnings", len(extracted.Metadata.Warnings),
	)
	return extracted, nil
}

// IngestJobDescription ingests a job posting document and segments it
func (p *Pipeline) IngestJobDescription(ctx context.Context, doc types.RawDocument) (*types.JobDescriptionRecord, error) {
	extracted, err := p.Ingest(ctx, doc)
	if err != nil {
		return nil, err
	}
	return parsing.ParseJobDescription(extracted.Text), nil
}

// IngestBatch ingests documents concurrently and returns one result per document in input order.
// A failing document never affects the others. Cancelling ctx stops documents that have not
// started yet; their results carry the context error.
func (p *Pipeline) IngestBatch(ctx context.Context, docs []types.RawDocument) []BatchResult {
	results := make([]BatchResult, len(docs))

	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i := range docs {
		results[i] = BatchResult{Index: i, DocumentID: uuid.NewString(), Filename: docs[i].Filename}

		g.Go(func() error {
			result := &results[i]
			if err := ctx.Err(); err != nil {
				result.Err = err
				return nil
			}
			result.Text, result.Err = p.ingest(ctx, result.DocumentID, docs[i])
			return nil
		})
	}

	// Workers never return errors
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.log.Infow("batch finished", "documents", len(docs), "failed", failed)

	return results
}
