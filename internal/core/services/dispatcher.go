package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
	"github.com/custodia-labs/keyscan/internal/logger"
)

// Dispatcher selects the extractor for a document's media type.
type Dispatcher struct {
	extractors map[domain.MediaType]driven.Extractor
}

// NewDispatcher creates a dispatcher over the given extractors.
// A later extractor for the same media type replaces an earlier one.
func NewDispatcher(extractors ...driven.Extractor) *Dispatcher {
	d := &Dispatcher{
		extractors: make(map[domain.MediaType]driven.Extractor, len(extractors)),
	}
	for _, e := range extractors {
		d.extractors[e.MediaType()] = e
	}
	return d
}

// Resolve returns the extractor registered for mt.
func (d *Dispatcher) Resolve(mt domain.MediaType) (driven.Extractor, error) {
	e, ok := d.extractors[mt]
	if !ok || !mt.IsSupported() {
		return nil, domain.ErrUnsupportedType
	}
	return e, nil
}

// Extract runs the matching extractor and lower-cases its output.
// Failures come back as errors wrapping domain.ErrUnsupportedType or
// domain.ErrExtractionFailed; a panicking extractor is reported as an
// extraction failure.
func (d *Dispatcher) Extract(ctx context.Context, doc domain.Document) (text *domain.ExtractedText, err error) {
	extractor, err := d.Resolve(doc.MediaType)
	if err != nil {
		logger.Warn("[%s] Unsupported file type for %s", doc.ID, doc.Path)
		return nil, fmt.Errorf("%w: %s", err, describeType(doc.Path))
	}

	defer func() {
		if r := recover(); r != nil {
			text = nil
			err = domain.NewExtractionError(doc.Path, doc.MediaType, fmt.Errorf("extractor panic: %v", r))
			logger.Warn("[%s] Extraction failed: %v", doc.ID, err)
		}
	}()

	raw, err := extractor.Extract(ctx, doc.Path)
	if err != nil {
		if !errors.Is(err, domain.ErrExtractionFailed) {
			err = domain.NewExtractionError(doc.Path, doc.MediaType, err)
		}
		logger.Warn("[%s] Extraction failed: %v", doc.ID, err)
		return nil, err
	}

	logger.Debug("[%s] Extracted %d bytes from %s (%s)", doc.ID, len(raw), doc.Path, doc.MediaType.MIME())

	return &domain.ExtractedText{
		Document: doc,
		Text:     strings.ToLower(raw),
	}, nil
}

// describeType names the extension of an unsupported file for messages.
func describeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "no file extension"
	}
	return ext
}
