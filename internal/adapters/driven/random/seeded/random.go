// Package seeded provides a deterministic driven.Random for tests.
// It must never back a live passphrase.
package seeded

import (
	"fmt"
	"math/rand/v2"

	"github.com/custodia-labs/nodice/internal/core/ports/driven"
)

// Ensure Random implements driven.Random.
var _ driven.Random = (*Random)(nil)

// Random is a PCG generator; equal seeds yield equal sequences.
type Random struct {
	rng *rand.Rand
}

// New returns a Random seeded with seed.
func New(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a pseudo-random integer in [0, n).
func (r *Random) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: invalid bound %d", n)
	}
	return r.rng.IntN(n), nil
}
