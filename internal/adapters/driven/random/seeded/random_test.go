package seeded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(t *testing.T, r *Random, n int) []int {
	t.Helper()
	out := make([]int, n)
	for i := range out {
		v, err := r.IntN(6)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestRandom_SameSeedSameSequence(t *testing.T) {
	assert.Equal(t, draw(t, New(42), 50), draw(t, New(42), 50))
}

func TestRandom_DifferentSeedsDiffer(t *testing.T) {
	assert.NotEqual(t, draw(t, New(1), 50), draw(t, New(2), 50))
}

func TestRandom_InRange(t *testing.T) {
	for _, v := range draw(t, New(7), 500) {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestRandom_InvalidBound(t *testing.T) {
	_, err := New(1).IntN(0)
	assert.Error(t, err)
}
