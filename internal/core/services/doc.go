// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The passphrase pipeline is a sequence of explicit stages, each taking
// its inputs and returning a new value:
//
//	load wordlist → resolve word count → roll dice → look up words
//
// Custom roll-key export short-circuits after loading.
package services
