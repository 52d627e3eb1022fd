package mcp

import (
	"github.com/custodia-labs/nodice/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Passphrase generates passphrases and exports roll keys.
	Passphrase driving.PassphraseService

	// Settings supplies defaults for omitted tool arguments. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Passphrase == nil {
		return ErrMissingPassphraseService
	}
	return nil
}
