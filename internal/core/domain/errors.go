package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent scan failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file whose media type has no extractor.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractionFailed indicates a supported file whose content could
	// not be read as its declared type.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrPathNotFound indicates the path does not reference an existing file.
	ErrPathNotFound = errors.New("path not found")
)

// ExtractionError describes a failed extraction.
// It matches ErrExtractionFailed with errors.Is and unwraps to the cause.
type ExtractionError struct {
	Path      string
	MediaType MediaType
	Err       error
}

// NewExtractionError wraps err as an ExtractionError.
func NewExtractionError(path string, mt MediaType, err error) *ExtractionError {
	return &ExtractionError{Path: path, MediaType: mt, Err: err}
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s text from %s: %v", e.MediaType, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExtractionFailed.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}
