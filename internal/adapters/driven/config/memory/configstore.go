// Package memory provides an in-memory ConfigStore. The CLI uses it to
// layer command-line overrides above the config file; tests use it in
// place of a file.
package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
	}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetInt retrieves an integer configuration value. Whole float64 values
// are accepted since JSON-shaped maps decode numbers that way.
func (s *ConfigStore) GetInt(key string) (int, error) {
	val, ok := s.Get(key)
	if !ok {
		return 0, nil
	}
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, typeError(key, v, "an integer")
		}
		return int(v), nil
	default:
		return 0, typeError(key, v, "an integer")
	}
}

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) ([]string, error) {
	val, ok := s.Get(key)
	if !ok {
		return nil, nil
	}
	switch v := val.(type) {
	case []string:
		return v, nil
	case []any:
		result := make([]string, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, typeError(fmt.Sprintf("%s[%d]", key, i), item, "a string")
			}
			result = append(result, str)
		}
		return result, nil
	default:
		return nil, typeError(key, v, "a string slice")
	}
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func typeError(key string, val any, want string) error {
	return fmt.Errorf("%w: %s is %T, want %s", domain.ErrInvalidInput, key, val, want)
}

// Path returns a marker instead of a file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
