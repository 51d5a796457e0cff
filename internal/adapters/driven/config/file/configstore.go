package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.toml"

// ConfigStore is a read-only, file-based implementation of driven.ConfigStore
// using TOML. A missing file is treated as empty configuration.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// DefaultConfigDir returns ~/.keyscan.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".keyscan"), nil
}

// NewConfigStore creates a TOML config store reading <configDir>/config.toml.
// If configDir is empty, defaults to ~/.keyscan. The directory is not created.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, ConfigFileName),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
// Nested tables are addressed with dot notation, e.g. "scan.chunk_size".
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) (int, error) {
	val, ok := s.Get(key)
	if !ok {
		return 0, nil
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, s.typeError(key, v, "an integer")
	}
}

// GetStringSlice retrieves a string list configuration value.
func (s *ConfigStore) GetStringSlice(key string) ([]string, error) {
	val, ok := s.Get(key)
	if !ok {
		return nil, nil
	}

	// TOML arrays are parsed as []any
	switch v := val.(type) {
	case []string:
		return v, nil
	case []any:
		result := make([]string, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, s.typeError(fmt.Sprintf("%s[%d]", key, i), item, "a string")
			}
			result = append(result, str)
		}
		return result, nil
	default:
		return nil, s.typeError(key, v, "an array of strings")
	}
}

func (s *ConfigStore) typeError(key string, val any, want string) error {
	return fmt.Errorf("%w: %s in %s is %s, want %s",
		domain.ErrInvalidInput, key, s.filePath, tomlType(val), want)
}

// tomlType names the TOML type go-toml decoded val from.
func tomlType(val any) string {
	switch val.(type) {
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int64, int:
		return "an integer"
	case float64:
		return "a float"
	case []any:
		return "an array"
	case map[string]any:
		return "a table"
	case time.Time, toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return "a date-time"
	default:
		return fmt.Sprintf("%T", val)
	}
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - run with defaults
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	s.data = flattenMap(loaded, "")
	return nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
