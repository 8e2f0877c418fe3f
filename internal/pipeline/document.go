package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// extensionMIMETypes maps well-known file extensions to upload MIME types
var extensionMIMETypes = map[string]string{
	".pdf":  types.MIMETypePDF,
	".docx": types.MIMETypeDOCX,
	".doc":  types.MIMETypeLegacyDoc,
	".txt":  types.MIMETypePlainText,
	".text": types.MIMETypePlainText,
	".md":   types.MIMETypePlainText,
}

// fallbackMIMEType is rejected by the extractor as unsupported
const fallbackMIMEType = "application/octet-stream"

// LoadDocument reads a file into a RawDocument. When mimeType is empty it is
// derived from the extension, then from the content.
func LoadDocument(path, mimeType string) (types.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RawDocument{}, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	if mimeType == "" {
		mimeType = DetectMIMEType(path, data)
	}

	return types.RawDocument{
		Data:     data,
		MIMEType: mimeType,
		Filename: filepath.Base(path),
		Size:     int64(len(data)),
	}, nil
}

// DetectMIMEType guesses the upload MIME type of a file
func DetectMIMEType(path string, data []byte) string {
	if mimeType, ok := extensionMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mimeType
	}

	kind, err := filetype.Match(data)
	if err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return fallbackMIMEType
}
