package driving

import "github.com/custodia-labs/nodice/internal/core/domain"

// SettingsService manages the persisted defaults for the CLI flags.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.Settings, error)

	// Save validates and persists settings.
	Save(settings *domain.Settings) error

	// Set parses, validates and persists a single setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
