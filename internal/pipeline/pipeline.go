// Package pipeline wires the normalization stages into a service handle used by the CLI and
// by embedding callers. Every stage is stateless; a Pipeline only carries configuration.
package pipeline

import (
	"github.com/jonathan/resume-normalizer/internal/config"
	"github.com/jonathan/resume-normalizer/internal/ingestion"
	"github.com/jonathan/resume-normalizer/internal/logger"
)

// DefaultConcurrency bounds IngestBatch when no option overrides it
const DefaultConcurrency = 4

// Pipeline runs documents through extraction, normalization, parsing and mapping
type Pipeline struct {
	extractor   *ingestion.Extractor
	log         *logger.Logger
	concurrency int
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithConcurrency sets the number of documents IngestBatch processes at once. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n >= 1 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger used for per-document records
func WithLogger(l *logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a Pipeline around an extractor. A nil extractor uses the default upload limits.
func New(extractor *ingestion.Extractor, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor:   extractor,
		log:         logger.NewNop(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.extractor == nil {
		p.extractor = ingestion.NewExtractor(ingestion.WithLogger(p.log))
	}
	return p
}

// NewFromConfig builds the extractor and the pipeline from loaded configuration
func NewFromConfig(cfg *config.Config, log *logger.Logger) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return New(
		ingestion.NewExtractorFromConfig(cfg.Extraction, log),
		WithConcurrency(cfg.Batch.Concurrency),
		WithLogger(log),
	)
}

// Concurrency returns the batch concurrency limit
func (p *Pipeline) Concurrency() int {
	return p.concurrency
}
