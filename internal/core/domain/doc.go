// Package domain defines the core business entities for nodice.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entry: A roll key paired with the word it selects
//   - Wordlist: An ordered, key-unique mapping of roll keys to words
//   - Options: The immutable configuration of a single run
//   - Passphrase: Rolled dice and the words they map to
//   - Result: Either a passphrase or a custom roll-key export
//   - Settings: Persisted defaults for the CLI flags
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
