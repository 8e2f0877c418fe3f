package ingestion

import (
	"fmt"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// UnsupportedFormatError is returned when the declared MIME type is not one the pipeline can decode.
// It is raised before any decode attempt.
type UnsupportedFormatError struct {
	MIMEType string
}

func (e *UnsupportedFormatError) Error() string {
	if e.MIMEType == "" {
		return "unsupported format: no MIME type declared"
	}
	return fmt.Sprintf("unsupported format: %s", e.MIMEType)
}

// DocumentTooLargeError is returned when an upload exceeds the configured size limit
type DocumentTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *DocumentTooLargeError) Error() string {
	return fmt.Sprintf("document too large: %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}

// ExtractionError is returned when a decoder cannot parse the byte stream
type ExtractionError struct {
	Format  types.DocumentFormat
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
