package ingestion

import (
	"fmt"
	"mime"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// NormalizeMIMEType lower-cases a declared MIME type and strips parameters such as charset
func NormalizeMIMEType(declared string) string {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		return mediaType
	}
	return strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
}

// formatFor maps a normalized MIME type to its decoder
func formatFor(mimeType string) (types.DocumentFormat, bool) {
	switch mimeType {
	case types.MIMETypePDF:
		return types.FormatPDF, true
	case types.MIMETypeDOCX:
		return types.FormatDOCX, true
	case types.MIMETypeLegacyDoc:
		return types.FormatLegacyDoc, true
	case types.MIMETypePlainText:
		return types.FormatPlainText, true
	default:
		return "", false
	}
}

// checkDocument enforces the upload boundary: a declared, allowed MIME type and a size within limit.
// No bytes are decoded here.
func checkDocument(validate *validator.Validate, doc *types.RawDocument, allowed []string, limit int64) (types.DocumentFormat, error) {
	mimeType := NormalizeMIMEType(doc.MIMEType)

	format, known := formatFor(mimeType)
	if !known || !slices.Contains(allowed, mimeType) {
		return "", &UnsupportedFormatError{MIMEType: mimeType}
	}

	if err := validate.Struct(doc); err != nil {
		return "", fmt.Errorf("invalid document: %w", err)
	}

	size := doc.EffectiveSize()
	if size > limit {
		return "", &DocumentTooLargeError{Size: size, Limit: limit}
	}

	return format, nil
}
