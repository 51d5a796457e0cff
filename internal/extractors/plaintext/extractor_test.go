package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
	"github.com/custodia-labs/keyscan/internal/testutil"
)

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, domain.MediaTypePlainText, New().MediaType())
}

func TestExtract_Success(t *testing.T) {
	path := testutil.WriteFile(t, "resume.txt", []byte("I know Java and SQL well"))

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "I know Java and SQL well", text)
}

func TestExtract_PreservesCase(t *testing.T) {
	path := testutil.WriteFile(t, "resume.txt", []byte("JavaScript"))

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "JavaScript", text)
}

func TestExtract_EmptyFile(t *testing.T) {
	path := testutil.WriteFile(t, "empty.txt", nil)

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtract_Unicode(t *testing.T) {
	path := testutil.WriteFile(t, "unicode.txt", []byte("Développeur Java · 東京"))

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Développeur Java · 東京", text)
}

func TestExtract_InvalidUTF8(t *testing.T) {
	path := testutil.WriteFile(t, "latin1.txt", []byte{'c', 'a', 'f', 0xe9})

	text, err := New().Extract(context.Background(), path)
	assert.Empty(t, text)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.ErrorIs(t, err, errInvalidUTF8)
}

func TestExtract_MissingFile(t *testing.T) {
	text, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Empty(t, text)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = (*Extractor)(nil)
}
