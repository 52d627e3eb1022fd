// Package mcp provides an MCP (Model Context Protocol) server adapter for nodice.
// It lets AI assistants generate diceware passphrases and export custom
// roll keys through the same services the CLI uses.
package mcp

import "errors"

// ErrMissingPassphraseService is returned when the passphrase service is not provided.
var ErrMissingPassphraseService = errors.New("mcp: passphrase service is required")
