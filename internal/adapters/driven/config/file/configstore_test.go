package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keyscan/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))
	return dir
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())

	_, ok := store.Get("keywords")
	assert.False(t, ok)
}

func TestNewConfigStore_DoesNotCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "keyscan")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".keyscan"), dir)
}

func TestConfigStore_ReadsValues(t *testing.T) {
	dir := writeConfig(t, `
keywords = ["Go", "Kubernetes", "gRPC"]

[scan]
chunk_size = 500
chunk_overlap = 10
workers = 4
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	keywords, err := store.GetStringSlice("keywords")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes", "gRPC"}, keywords)

	for key, want := range map[string]int{
		"scan.chunk_size":    500,
		"scan.chunk_overlap": 10,
		"scan.workers":       4,
		"missing":            0,
	} {
		got, err := store.GetInt(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}
}

func TestConfigStore_WrongTypes(t *testing.T) {
	dir := writeConfig(t, `
keywords = "java"
mixed = ["java", 3]

[scan]
chunk_size = "big"
chunk_overlap = 1.5
workers = [2]
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	tests := []struct {
		name    string
		get     func() error
		wantMsg string
	}{
		{
			name:    "string for list",
			get:     func() error { _, err := store.GetStringSlice("keywords"); return err },
			wantMsg: "keywords in " + store.Path() + " is a string, want an array of strings",
		},
		{
			name:    "integer inside list",
			get:     func() error { _, err := store.GetStringSlice("mixed"); return err },
			wantMsg: "mixed[1] in " + store.Path() + " is an integer, want a string",
		},
		{
			name:    "string for integer",
			get:     func() error { _, err := store.GetInt("scan.chunk_size"); return err },
			wantMsg: "scan.chunk_size in " + store.Path() + " is a string, want an integer",
		},
		{
			name:    "float for integer",
			get:     func() error { _, err := store.GetInt("scan.chunk_overlap"); return err },
			wantMsg: "scan.chunk_overlap in " + store.Path() + " is a float",
		},
		{
			name:    "array for integer",
			get:     func() error { _, err := store.GetInt("scan.workers"); return err },
			wantMsg: "scan.workers in " + store.Path() + " is an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConfigStore_EmptyFile(t *testing.T) {
	dir := writeConfig(t, "")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	keywords, err := store.GetStringSlice("keywords")
	require.NoError(t, err)
	assert.Nil(t, keywords)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	dir := writeConfig(t, "this is not valid TOML {{{[[")

	store, err := NewConfigStore(dir)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
	assert.Nil(t, store)
}

func TestConfigStore_Load_Reload(t *testing.T) {
	dir := writeConfig(t, `keywords = ["java"]`)
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte(`keywords = ["rust"]`), 0600))
	require.NoError(t, store.Load())

	keywords, err := store.GetStringSlice("keywords")
	require.NoError(t, err)
	assert.Equal(t, []string{"rust"}, keywords)
}

func TestConfigStore_Load_ReadFileError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read
	require.NoError(t, os.Mkdir(filepath.Join(dir, ConfigFileName), 0700))

	store, err := NewConfigStore(dir)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"keywords": []any{"java"},
		"scan": map[string]any{
			"chunk_size": int64(100),
			"deep":       map[string]any{"value": true},
		},
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, []any{"java"}, flat["keywords"])
	assert.Equal(t, int64(100), flat["scan.chunk_size"])
	assert.Equal(t, true, flat["scan.deep.value"])
	assert.Len(t, flat, 3)
}
