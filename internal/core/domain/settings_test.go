package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeywordSet(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected KeywordSet
	}{
		{
			name:     "lower-cases",
			raw:      []string{"Java", "TypeScript"},
			expected: KeywordSet{"java", "typescript"},
		},
		{
			name:     "trims and drops empty",
			raw:      []string{"  sql ", "", "   "},
			expected: KeywordSet{"sql"},
		},
		{
			name:     "collapses duplicates keeping first position",
			raw:      []string{"SQL", "java", "sql"},
			expected: KeywordSet{"sql", "java"},
		},
		{
			name:     "nil input",
			raw:      nil,
			expected: KeywordSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewKeywordSet(tt.raw...))
		})
	}
}

func TestKeywordSet_MaxLen(t *testing.T) {
	assert.Equal(t, 0, KeywordSet{}.MaxLen())
	assert.Equal(t, 11, NewKeywordSet(DefaultKeywords...).MaxLen())
	assert.Equal(t, 4, KeywordSet{"café"}.MaxLen())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, KeywordSet{"java", "spring", "spring boot", "javascript", "typescript", "sql", "mysql"}, s.Keywords)
	assert.Equal(t, 1000, s.ChunkSize)
	assert.Equal(t, 0, s.ChunkOverlap)
	assert.Equal(t, 0, s.Workers)
	require.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Settings) {}},
		{name: "zero chunk size", modify: func(s *Settings) { s.ChunkSize = 0 }, wantErr: true},
		{name: "negative chunk size", modify: func(s *Settings) { s.ChunkSize = -5 }, wantErr: true},
		{name: "negative overlap", modify: func(s *Settings) { s.ChunkOverlap = -1 }, wantErr: true},
		{name: "overlap equal to chunk size", modify: func(s *Settings) { s.ChunkSize = 10; s.ChunkOverlap = 10 }, wantErr: true},
		{name: "overlap below chunk size", modify: func(s *Settings) { s.ChunkSize = 10; s.ChunkOverlap = 9 }},
		{name: "negative workers", modify: func(s *Settings) { s.Workers = -1 }, wantErr: true},
		{name: "explicit workers", modify: func(s *Settings) { s.Workers = 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
