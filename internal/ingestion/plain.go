package ingestion

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-normalizer/internal/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// extractPlainText decodes bytes as UTF-8. A leading byte order mark is dropped and
// invalid sequences are replaced with U+FFFD; valid input is returned unchanged.
func extractPlainText(data []byte) (string, types.DocumentMetadata) {
	meta := types.DocumentMetadata{Format: types.FormatPlainText}

	if kind := sniffedKind(data); kind != "" {
		meta.Warnings = append(meta.Warnings, fmt.Sprintf("declared as text/plain but content looks like %s", kind))
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), meta
	}

	meta.Warnings = append(meta.Warnings, "invalid UTF-8 sequences were replaced")
	return strings.ToValidUTF8(string(data), "\uFFFD"), meta
}
