// Package ingestion turns uploaded documents into raw text and normalizes that text.
package ingestion

import (
	"context"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-normalizer/internal/config"
	"github.com/jonathan/resume-normalizer/internal/logger"
	"github.com/jonathan/resume-normalizer/internal/types"
)

// DefaultAllowedMIMETypes lists every MIME type a decoder exists for
var DefaultAllowedMIMETypes = []string{
	types.MIMETypePDF,
	types.MIMETypeDOCX,
	types.MIMETypeLegacyDoc,
	types.MIMETypePlainText,
}

// Extractor decodes RawDocuments into ExtractedText.
// An Extractor holds no per-call state; it is safe for concurrent use and needs no teardown.
type Extractor struct {
	validate *validator.Validate
	allowed  []string
	maxSize  int64
	log      *logger.Logger
}

// Option configures an Extractor
type Option func(*Extractor)

// WithMaxSize lowers the upload limit. Values outside (0, MaxDocumentSize] are ignored.
func WithMaxSize(n int64) Option {
	return func(e *Extractor) {
		if n > 0 && n <= types.MaxDocumentSize {
			e.maxSize = n
		}
	}
}

// WithAllowedMIMETypes restricts the accepted MIME types. Types without a decoder are never accepted.
func WithAllowedMIMETypes(mimeTypes []string) Option {
	return func(e *Extractor) {
		allowed := make([]string, 0, len(mimeTypes))
		for _, mt := range mimeTypes {
			mt = NormalizeMIMEType(mt)
			if _, ok := formatFor(mt); ok && !slices.Contains(allowed, mt) {
				allowed = append(allowed, mt)
			}
		}
		e.allowed = allowed
	}
}

// WithLogger sets the logger used for per-document diagnostics
func WithLogger(l *logger.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

// NewExtractor creates an Extractor accepting all supported formats up to MaxDocumentSize
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		validate: validator.New(),
		allowed:  slices.Clone(DefaultAllowedMIMETypes),
		maxSize:  types.MaxDocumentSize,
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewExtractorFromConfig creates an Extractor from the extraction section of the configuration
func NewExtractorFromConfig(cfg config.ExtractionConfig, log *logger.Logger) *Extractor {
	return NewExtractor(
		WithMaxSize(cfg.MaxUploadBytes),
		WithAllowedMIMETypes(cfg.AllowedMIMETypes),
		WithLogger(log),
	)
}

// MaxSize returns the effective upload limit in bytes
func (e *Extractor) MaxSize() int64 {
	return e.maxSize
}

// Extract decodes doc into text plus metadata. It fails with *UnsupportedFormatError or
// *DocumentTooLargeError before decoding, and with *ExtractionError when the decoder
// cannot parse the bytes. A failed extraction never yields an empty result.
func (e *Extractor) Extract(ctx context.Context, doc types.RawDocument) (*types.ExtractedText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := checkDocument(e.validate, &doc, e.allowed, e.maxSize)
	if err != nil {
		e.log.Debugw("document rejected", "filename", doc.Filename, "mime_type", doc.MIMEType, "error", err)
		return nil, err
	}

	var (
		text string
		meta types.DocumentMetadata
	)
	switch format {
	case types.FormatPDF:
		text, meta, err = extractPDF(doc.Data)
	case types.FormatDOCX:
		text, meta, err = extractDOCX(doc.Data, types.FormatDOCX)
	case types.FormatLegacyDoc:
		text, meta, err = extractLegacyDoc(doc.Data)
	default:
		text, meta = extractPlainText(doc.Data)
	}
	if err != nil {
		e.log.Debugw("extraction failed", "filename", doc.Filename, "format", format, "error", err)
		return nil, err
	}

	meta.Format = format
	meta.WordCount = CountWords(text)
	for _, w := range meta.Warnings {
		e.log.Warnw("extraction warning", "filename", doc.Filename, "format", format, "warning", w)
	}

	return &types.ExtractedText{Text: text, Metadata: meta}, nil
}

var defaultExtractor = NewExtractor()

// Extract decodes data declared as mimeType with the default limits
func Extract(data []byte, mimeType string) (*types.ExtractedText, error) {
	return defaultExtractor.Extract(context.Background(), types.RawDocument{
		Data:     data,
		MIMEType: mimeType,
		Size:     int64(len(data)),
	})
}
