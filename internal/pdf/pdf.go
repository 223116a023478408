// Package pdf extracts plain text from uploaded syllabus documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor turns a document on disk into plain text.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// FileExtractor reads PDF files from the filesystem.
type FileExtractor struct{}

// ExtractText returns the concatenated text of all pages. An unreadable
// document or one with no extractable text is an error; the caller aborts
// the request.
func (FileExtractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract PDF text: %w", err)
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("read PDF text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("PDF contains no extractable text")
	}
	return text, nil
}
