package driving

import (
	"context"

	"github.com/custodia-labs/keyscan/internal/core/domain"
)

// ScanService finds keywords in documents.
type ScanService interface {
	// Scan extracts the text of the file at path and reports which keywords
	// it contains. On failure the result is empty and the error is one of
	// domain.ErrPathNotFound, domain.ErrUnsupportedType or
	// domain.ErrExtractionFailed.
	Scan(ctx context.Context, path string, keywords domain.KeywordSet) (*domain.ScanResult, error)
}
