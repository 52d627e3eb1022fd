// Package crypto provides the live driven.Random, backed by crypto/rand.
package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/custodia-labs/nodice/internal/core/ports/driven"
)

// Ensure Random implements driven.Random.
var _ driven.Random = (*Random)(nil)

// Random draws uniform integers from a cryptographically secure source.
type Random struct {
	reader io.Reader
}

// New returns a Random reading from crypto/rand.Reader.
func New() *Random {
	return &Random{reader: rand.Reader}
}

// NewFromReader returns a Random reading from r.
func NewFromReader(r io.Reader) *Random {
	return &Random{reader: r}
}

// IntN returns a uniform random integer in [0, n).
func (r *Random) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: invalid bound %d", n)
	}
	v, err := rand.Int(r.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random: %w", err)
	}
	return int(v.Int64()), nil
}
