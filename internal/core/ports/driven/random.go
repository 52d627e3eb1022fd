package driven

// Random is the source of dice rolls.
// The live binary uses a cryptographically secure source; tests inject a
// seeded one. Implementations need not be safe for concurrent use.
type Random interface {
	// IntN returns a uniform random integer in [0, n). n must be > 0.
	IntN(n int) (int, error)
}
