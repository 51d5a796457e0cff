package driving

import "github.com/custodia-labs/keyscan/internal/core/domain"

// SettingsService resolves the settings for a run.
type SettingsService interface {
	// Get returns the configured settings, falling back to defaults.
	Get() (domain.Settings, error)

	// GetDefaults returns the built-in settings.
	GetDefaults() domain.Settings
}
