// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Random: Uniform random integers for dice rolls (crypto/rand in the binary)
//   - WordlistReader: Reads the lines of a wordlist file
//   - ConfigStore: Persisted settings
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
