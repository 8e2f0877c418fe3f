package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// pageSeparator separates the text of consecutive pages
const pageSeparator = "\n\n"

// extractPDF decodes every page in document order and joins page texts with a blank line.
// Title and author come from the document information dictionary when present.
func extractPDF(data []byte) (text string, meta types.DocumentMetadata, err error) {
	meta.Format = types.FormatPDF

	// the decoder panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{
				Format:  types.FormatPDF,
				Message: "decoder could not parse document",
				Cause:   fmt.Errorf("%v", r),
			}
		}
	}()

	if !isPDF(data) {
		return "", meta, &ExtractionError{Format: types.FormatPDF, Message: "content is not a PDF document"}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", meta, &ExtractionError{Format: types.FormatPDF, Message: "failed to open PDF", Cause: err}
	}

	numPages := reader.NumPage()
	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := page.Font(name)
				fonts[name] = &font
			}
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", meta, &ExtractionError{
				Format:  types.FormatPDF,
				Message: fmt.Sprintf("failed to read text of page %d", i),
				Cause:   err,
			}
		}
		pages = append(pages, strings.TrimRight(pageText, " \t\r\n"))
	}

	info := reader.Trailer().Key("Info")
	meta.Title = strings.TrimSpace(info.Key("Title").Text())
	meta.Author = strings.TrimSpace(info.Key("Author").Text())
	meta.PageCount = numPages

	return strings.Join(pages, pageSeparator), meta, nil
}
