package ingestion

import (
	"github.com/h2non/filetype"
)

// sniffedKind returns the file extension detected from magic bytes, or "" when unknown
func sniffedKind(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.Extension
}

// isPDF reports whether the content starts with a PDF header
func isPDF(data []byte) bool {
	return filetype.Is(data, "pdf")
}

// isOOXML reports whether the content is a zip container, which every DOCX package is
func isOOXML(data []byte) bool {
	return filetype.Is(data, "docx") || filetype.Is(data, "zip")
}

// isOLE reports whether the content is a legacy compound (OLE2) document such as a binary .doc
func isOLE(data []byte) bool {
	return filetype.Is(data, "doc")
}
