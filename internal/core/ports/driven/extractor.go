package driven

import (
	"context"

	"github.com/custodia-labs/keyscan/internal/core/domain"
)

// Extractor converts a file on disk into plain text.
// Each extractor handles exactly one media type.
type Extractor interface {
	// MediaType returns the media type this extractor handles.
	MediaType() domain.MediaType

	// Extract reads the file at path and returns its text content.
	// On failure it returns a *domain.ExtractionError and no text;
	// partial content is never returned.
	Extract(ctx context.Context, path string) (string, error)
}
