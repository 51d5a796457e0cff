package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrExtractionFailed", ErrExtractionFailed},
		{"ErrPathNotFound", ErrPathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrUnsupportedType(t *testing.T) {
	assert.Equal(t, "unsupported type", ErrUnsupportedType.Error())
	assert.False(t, errors.Is(ErrUnsupportedType, ErrExtractionFailed))
}

func TestExtractionError(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := NewExtractionError("/tmp/cv.docx", MediaTypeDOCX, cause)

	assert.Equal(t, "extracting docx text from /tmp/cv.docx: zip: not a valid zip file", err.Error())
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractionError_Wrapped(t *testing.T) {
	err := fmt.Errorf("scan: %w", NewExtractionError("/a.pdf", MediaTypePDF, errors.New("bad xref")))

	var extErr *ExtractionError
	assert.True(t, errors.As(err, &extErr))
	assert.Equal(t, MediaTypePDF, extErr.MediaType)
	assert.Equal(t, "/a.pdf", extErr.Path)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}
