// Package plaintext extracts text from UTF-8 encoded text files.
package plaintext

import (
	"context"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// errInvalidUTF8 is returned for files that are not valid UTF-8.
var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// MediaType returns the media type this extractor handles.
func (e *Extractor) MediaType() domain.MediaType {
	return domain.MediaTypePlainText
}

// Extract reads the whole file as UTF-8 text.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewExtractionError(path, domain.MediaTypePlainText, err)
	}

	if !utf8.Valid(content) {
		return "", domain.NewExtractionError(path, domain.MediaTypePlainText, errInvalidUTF8)
	}

	return string(content), nil
}
