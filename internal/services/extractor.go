package services

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// TextExtractor turns an uploaded resume into plain text.
type TextExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText implements TextExtractor. The format is chosen by file extension;
// the result is trimmed of surrounding whitespace.
func (x *textExtractor) ExtractText(data []byte, filename string) (string, error) {
	var (
		text string
		err  error
	)

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx", ".doc":
		text, err = extractWordDocument(data)
	default:
		return "", fmt.Errorf("%w: %q (upload a PDF or DOCX file)", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return "", &ExtractionError{Filename: filepath.Base(filename), Cause: err}
	}

	return strings.TrimSpace(text), nil
}

func extractPDF(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed object graphs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Page %d yielded no text: %v", pageIndex, err)
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), nil
}

func extractWordDocument(data []byte) (string, error) {
	body, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	var textBuilder strings.Builder
	for _, paragraph := range strings.Split(body, "\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		textBuilder.WriteString(paragraph)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}
