package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"code.sajari.com/docconv"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// extractDOCX decodes a WordprocessingML package to raw text, discarding styling.
// Problems that do not prevent decoding are returned as metadata warnings.
func extractDOCX(data []byte, format types.DocumentFormat) (text string, meta types.DocumentMetadata, err error) {
	meta.Format = format

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{
				Format:  format,
				Message: "decoder could not parse document",
				Cause:   fmt.Errorf("%v", r),
			}
		}
	}()

	if !isOOXML(data) {
		return "", meta, &ExtractionError{Format: format, Message: "content is not a DOCX (OOXML) package"}
	}

	hasMain, err := hasWordprocessingPart(data)
	if err != nil {
		return "", meta, &ExtractionError{Format: format, Message: "malformed DOCX container", Cause: err}
	}
	if !hasMain {
		return "", meta, &ExtractionError{Format: format, Message: "package has no WordprocessingML document part"}
	}

	body, props, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", meta, &ExtractionError{Format: format, Message: "malformed DOCX container", Cause: err}
	}

	if len(props) == 0 {
		meta.Warnings = append(meta.Warnings, "document has no core properties")
	}
	meta.Title = firstProperty(props, "title", "Title")
	meta.Author = firstProperty(props, "creator", "Creator", "Author")

	text = strings.Trim(body, "\n")
	if strings.TrimSpace(text) == "" {
		meta.Warnings = append(meta.Warnings, "document body contains no text")
	}

	return text, meta, nil
}

// extractLegacyDoc handles uploads declared as application/msword. Many such uploads are
// really OOXML packages and are decoded as DOCX; binary OLE documents cannot be decoded in-process.
func extractLegacyDoc(data []byte) (string, types.DocumentMetadata, error) {
	switch {
	case isOOXML(data):
		text, meta, err := extractDOCX(data, types.FormatLegacyDoc)
		if err != nil {
			return "", meta, err
		}
		meta.Warnings = append([]string{"declared as application/msword but content is a DOCX package"}, meta.Warnings...)
		return text, meta, nil
	case isOLE(data):
		return "", types.DocumentMetadata{Format: types.FormatLegacyDoc}, &ExtractionError{
			Format:  types.FormatLegacyDoc,
			Message: "legacy binary Word documents cannot be decoded; save the file as DOCX or PDF",
		}
	default:
		return "", types.DocumentMetadata{Format: types.FormatLegacyDoc}, &ExtractionError{
			Format:  types.FormatLegacyDoc,
			Message: "content is not a Word document",
		}
	}
}

// wordprocessingContentTypes are the main-part content types of Word packages
var wordprocessingContentTypes = []string{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.template.main+xml",
	"application/vnd.ms-word.document.macroEnabled.main+xml",
	"application/vnd.ms-word.template.macroEnabledTemplate.main+xml",
}

const maxContentTypesSize = 1 << 20

type contentTypes struct {
	Overrides []struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Override"`
}

// hasWordprocessingPart reports whether an OOXML package declares a Word main document part.
// Spreadsheets and presentations share the container format but not this part.
// Packages without [Content_Types].xml are accepted when they carry word/document.xml.
func hasWordprocessingPart(data []byte) (bool, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false, err
	}

	var hasDocumentXML bool
	for _, f := range zr.File {
		switch f.Name {
		case "word/document.xml":
			hasDocumentXML = true
		case "[Content_Types].xml":
			rc, err := f.Open()
			if err != nil {
				return false, err
			}
			raw, err := io.ReadAll(io.LimitReader(rc, maxContentTypesSize))
			rc.Close()
			if err != nil {
				return false, err
			}
			var declared contentTypes
			if err := xml.Unmarshal(raw, &declared); err != nil {
				return false, fmt.Errorf("invalid [Content_Types].xml: %w", err)
			}
			for _, o := range declared.Overrides {
				for _, ct := range wordprocessingContentTypes {
					if strings.EqualFold(strings.TrimSpace(o.ContentType), ct) {
						return true, nil
					}
				}
			}
			return false, nil
		}
	}
	return hasDocumentXML, nil
}

// firstProperty returns the first non-empty core property among keys
func firstProperty(props map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(props[key]); v != "" {
			return v
		}
	}
	return ""
}
