package driving

import "github.com/custodia-labs/embedmap/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.Settings, error)

	// Set validates and persists a single setting.
	Set(key, value string) error

	// Keys lists the recognised setting keys.
	Keys() []string

	// Path returns the location of the backing configuration.
	Path() string
}
