package driven

// ConfigStore provides read access to application configuration.
// Implementations handle parsing (e.g., TOML files) and type conversion.
// keyscan never writes configuration.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetInt retrieves an integer configuration value.
	// Returns 0 if the key doesn't exist, and an error wrapping
	// domain.ErrInvalidInput that names the key and the value's type
	// if it isn't an integer.
	GetInt(key string) (int, error)

	// GetStringSlice retrieves a string list configuration value.
	// Returns nil if the key doesn't exist, and an error wrapping
	// domain.ErrInvalidInput if it isn't a list of strings.
	GetStringSlice(key string) ([]string, error)

	// Path returns the configuration file path.
	Path() string
}
