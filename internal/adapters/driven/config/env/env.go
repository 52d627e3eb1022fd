// Package env overlays NODICE_* environment variables onto settings.
package env

import (
	"fmt"

	caarlosenv "github.com/caarlos0/env/v11"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// Apply overrides fields of settings whose environment variable is set.
// Unset variables leave the stored value in place.
func Apply(settings *domain.Settings) error {
	if err := caarlosenv.Parse(settings); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyFrom is Apply reading from environ instead of the process environment.
func ApplyFrom(settings *domain.Settings, environ map[string]string) error {
	if err := caarlosenv.ParseWithOptions(settings, caarlosenv.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
