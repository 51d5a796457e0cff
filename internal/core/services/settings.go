package services

import (
	"fmt"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
	"github.com/custodia-labs/keyscan/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyKeywords     = "keywords"
	KeyChunkSize    = "scan.chunk_size"
	KeyChunkOverlap = "scan.chunk_overlap"
	KeyWorkers      = "scan.workers"
)

// SettingsService resolves settings from layered config stores.
type SettingsService struct {
	stores []driven.ConfigStore
}

// NewSettingsService creates a settings service. Stores are consulted in
// order and the first one holding a key wins, so command-line overrides
// go before the config file. Nil stores are skipped.
func NewSettingsService(stores ...driven.ConfigStore) *SettingsService {
	s := &SettingsService{}
	for _, store := range stores {
		if store != nil {
			s.stores = append(s.stores, store)
		}
	}
	return s
}

// Get returns the effective settings. A keyword list that is set but
// normalises to nothing is rejected rather than replaced by the defaults.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := s.GetDefaults()

	if store := s.lookup(KeyKeywords); store != nil {
		raw, err := store.GetStringSlice(KeyKeywords)
		if err != nil {
			return domain.Settings{}, err
		}
		kws := domain.NewKeywordSet(raw...)
		if len(kws) == 0 {
			return domain.Settings{}, fmt.Errorf("%w: %s from %s has no non-blank entries",
				domain.ErrInvalidInput, KeyKeywords, store.Path())
		}
		settings.Keywords = kws
	}

	for _, field := range []struct {
		key string
		dst *int
	}{
		{KeyChunkSize, &settings.ChunkSize},
		{KeyChunkOverlap, &settings.ChunkOverlap},
		{KeyWorkers, &settings.Workers},
	} {
		store := s.lookup(field.key)
		if store == nil {
			continue
		}
		n, err := store.GetInt(field.key)
		if err != nil {
			return domain.Settings{}, err
		}
		*field.dst = n
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("invalid settings (chunk size %d, overlap %d, workers %d): %w",
			settings.ChunkSize, settings.ChunkOverlap, settings.Workers, err)
	}

	return settings, nil
}

// GetDefaults returns the built-in settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// lookup returns the first store that holds key.
func (s *SettingsService) lookup(key string) driven.ConfigStore {
	for _, store := range s.stores {
		if _, ok := store.Get(key); ok {
			return store
		}
	}
	return nil
}
