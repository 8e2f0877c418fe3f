package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

var excessiveBlankLines = regexp.MustCompile(`\n{3,}`)

// Normalize cleans whitespace and line breaks the same way for every source format.
// Control characters, form feeds included, count as whitespace: "A\fB" becomes "A B", not "AB".
// It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line independently
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	result := strings.Join(lines, "\n")

	// 3. Remove excessive blank lines (max 2 consecutive newlines)
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine collapses every run of horizontal whitespace or control characters into one
// space and trims the line. Zero-width characters are dropped outright.
func cleanLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	pendingSpace := false
	for _, r := range line {
		switch {
		case isZeroWidth(r):
			continue
		case unicode.IsSpace(r) || unicode.IsControl(r):
			pendingSpace = true
		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff', '\u00ad':
		return true
	}
	return false
}
