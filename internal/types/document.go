// Package types provides type definitions for structured data used throughout the resume-normalizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Supported MIME types accepted at the upload boundary
const (
	MIMETypePDF       = "application/pdf"
	MIMETypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypeLegacyDoc = "application/msword"
	MIMETypePlainText = "text/plain"
)

// MaxDocumentSize is the largest upload accepted by the pipeline (10 MiB)
const MaxDocumentSize int64 = 10 << 20

// DocumentFormat identifies which decoder produced an ExtractedText
type DocumentFormat string

// DocumentFormat values
const (
	FormatPDF       DocumentFormat = "pdf"
	FormatDOCX      DocumentFormat = "docx"
	FormatLegacyDoc DocumentFormat = "doc"
	FormatPlainText DocumentFormat = "text"
)

// RawDocument is an uploaded document as handed over by the upload boundary.
// It is request-scoped and consumed once.
type RawDocument struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type" validate:"required"`
	Filename string `json:"filename,omitempty"`
	Size     int64  `json:"size" validate:"gte=0"`
}

// EffectiveSize returns the larger of the declared size and the buffer length
func (d *RawDocument) EffectiveSize() int64 {
	if n := int64(len(d.Data)); n > d.Size {
		return n
	}
	return d.Size
}

// ExtractedText is the raw text decoded from a RawDocument together with lightweight metadata
type ExtractedText struct {
	Text     string           `json:"text"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata holds what the decoder could learn about the document
type DocumentMetadata struct {
	Format    DocumentFormat `json:"format"`
	Title     string         `json:"title,omitempty"`
	Author    string         `json:"author,omitempty"`
	PageCount int            `json:"page_count,omitempty"`
	WordCount int            `json:"word_count"`
	Warnings  []string       `json:"warnings,omitempty"` // Non-fatal decoder issues
}
