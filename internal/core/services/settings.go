package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/core/ports/driven"
	"github.com/custodia-labs/nodice/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyWordlistPath = "wordlist.path"
	keyDelimiter    = "wordlist.delimiter"
	keySpacer       = "passphrase.spacer"
	keyWords        = "passphrase.words"
	keyEntropy      = "passphrase.entropy"
	keySides        = "dice.sides"
)

var settingsKeys = []string{
	keyWordlistPath,
	keyDelimiter,
	keySpacer,
	keyWords,
	keyEntropy,
	keySides,
}

// SettingsOverlay adjusts settings after they are read from the store,
// such as applying environment overrides.
type SettingsOverlay func(*domain.Settings) error

// SettingsService manages the persisted flag defaults.
type SettingsService struct {
	configStore driven.ConfigStore
	overlays    []SettingsOverlay
}

// NewSettingsService creates a new settings service. Overlays run in
// order on every Get.
func NewSettingsService(configStore driven.ConfigStore, overlays ...SettingsOverlay) *SettingsService {
	return &SettingsService{configStore: configStore, overlays: overlays}
}

// Get retrieves current settings. Missing keys take their defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		WordlistPath: s.getString(keyWordlistPath, defaults.WordlistPath),
		Delimiter:    s.getString(keyDelimiter, defaults.Delimiter),
		Spacer:       s.getString(keySpacer, defaults.Spacer),
		Words:        s.getInt(keyWords, defaults.Words),
		Entropy:      s.getInt(keyEntropy, defaults.Entropy),
		Sides:        s.getInt(keySides, defaults.Sides),
	}
	for _, overlay := range s.overlays {
		if err := overlay(settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}

	values := map[string]any{
		keyWordlistPath: settings.WordlistPath,
		keyDelimiter:    settings.Delimiter,
		keySpacer:       settings.Spacer,
		keyWords:        settings.Words,
		keyEntropy:      settings.Entropy,
		keySides:        settings.Sides,
	}
	for _, key := range settingsKeys {
		if err := s.configStore.Set(key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the result and persists it.
// String values accept Go escape sequences, so `\t` is a tab.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var stored any
	switch key {
	case keyWordlistPath:
		settings.WordlistPath = value
		stored = value
	case keyDelimiter, keySpacer:
		unescaped, err := unescape(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		if key == keyDelimiter {
			settings.Delimiter = unescaped
		} else {
			settings.Spacer = unescaped
		}
		stored = unescaped
	case keyWords, keyEntropy, keySides:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		switch key {
		case keyWords:
			settings.Words = n
		case keyEntropy:
			settings.Entropy = n
		default:
			settings.Sides = n
		}
		stored = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := ValidateSettings(settings); err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func unescape(value string) (string, error) {
	return strconv.Unquote(`"` + value + `"`)
}
