// Package pdf extracts text from PDF documents page by page.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
	"github.com/custodia-labs/keyscan/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// MediaType returns the media type this extractor handles.
func (e *Extractor) MediaType() domain.MediaType {
	return domain.MediaTypePDF
}

// Extract concatenates the plain text of every page in page order.
// A document with no pages yields empty text. A page that fails to
// decode fails the whole extraction.
func (e *Extractor) Extract(_ context.Context, path string) (text string, err error) {
	// The PDF reader panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = domain.NewExtractionError(path, domain.MediaTypePDF, fmt.Errorf("malformed document: %v", r))
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", domain.NewExtractionError(path, domain.MediaTypePDF, err)
	}
	defer f.Close()

	pages := reader.NumPage()
	logger.Debug("PDF %s has %d pages", path, pages)

	var builder strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", domain.NewExtractionError(path, domain.MediaTypePDF, fmt.Errorf("page %d: %w", i, err))
		}
		builder.WriteString(pageText)
	}

	return builder.String(), nil
}
