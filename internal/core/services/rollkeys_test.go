package services

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

func TestFactorPair_KnownSizes(t *testing.T) {
	tests := []struct {
		size      int
		wantSides int
		wantDice  int
	}{
		{4, 2, 2},
		{8, 2, 3},
		{9, 3, 2},
		{16, 2, 4},
		{25, 5, 2},
		{36, 6, 2},
		{64, 2, 6},
		{81, 3, 4},
		{216, 6, 3},
		{1296, 6, 4},
		{6561, 3, 8},
		{7776, 6, 5},
		{32768, 2, 15},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.size), func(t *testing.T) {
			sides, dice, err := FactorPair(tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSides, sides)
			assert.Equal(t, tt.wantDice, dice)
		})
	}
}

func TestFactorPair_AllSupportedPowers(t *testing.T) {
	for sides := domain.MinDerivedSides; sides <= domain.MaxDerivedSides; sides++ {
		size := sides * sides
		for dice := domain.MinDerivedDice; size <= 1<<20; dice++ {
			gotSides, gotDice, err := FactorPair(size)
			require.NoError(t, err, "size %d", size)

			assert.Equal(t, size, pow(gotSides, gotDice), "size %d", size)
			// The smallest base wins, e.g. 16 is 2^4, never 4^2.
			assert.LessOrEqual(t, gotSides, sides, "size %d", size)
			if isPrime(sides) {
				assert.Equal(t, sides, gotSides, "size %d", size)
				assert.Equal(t, dice, gotDice, "size %d", size)
			}

			size *= sides
		}
	}
}

func TestFactorPair_NotAPerfectPower(t *testing.T) {
	tests := []struct {
		size      int
		wantBelow int
		wantAbove int
	}{
		{0, 0, 4},
		{1, 0, 4},
		{3, 0, 4},
		{7, 4, 8},
		{10, 9, 16},
		{7775, 6561, 7776},
		{7777, 7776, 8192},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.size), func(t *testing.T) {
			_, _, err := FactorPair(tt.size)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnsupportedWordlistSize)

			var sizeErr *domain.UnsupportedWordlistSizeError
			require.True(t, errors.As(err, &sizeErr))
			assert.Equal(t, tt.size, sizeErr.Size)
			assert.Equal(t, tt.wantBelow, sizeErr.Below)
			assert.Equal(t, tt.wantAbove, sizeErr.Above)
			assert.Contains(t, err.Error(), "not a perfect power")
		})
	}
}

func TestFactorPair_TooManySides(t *testing.T) {
	tests := []struct {
		size      int
		wantSides int
	}{
		{100, 10},
		{1000, 10},
		{10000, 10},
		{121, 11},
		{2500, 50},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.size), func(t *testing.T) {
			_, _, err := FactorPair(tt.size)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnsupportedDiceSides)
			assert.NotErrorIs(t, err, domain.ErrUnsupportedWordlistSize)

			var sidesErr *domain.UnsupportedDiceSidesError
			require.True(t, errors.As(err, &sidesErr))
			assert.Equal(t, tt.size, sidesErr.Size)
			assert.Equal(t, tt.wantSides, sidesErr.Sides)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d words", tt.size))
			assert.Contains(t, err.Error(), fmt.Sprintf("%d-sided", tt.wantSides))
		})
	}
}

func TestRollKey(t *testing.T) {
	assert.Equal(t, "11111", RollKey(0, 6, 5))
	assert.Equal(t, "11112", RollKey(1, 6, 5))
	assert.Equal(t, "11116", RollKey(5, 6, 5))
	assert.Equal(t, "11121", RollKey(6, 6, 5))
	assert.Equal(t, "66666", RollKey(7775, 6, 5))
	assert.Equal(t, "11", RollKey(0, 2, 2))
	assert.Equal(t, "12", RollKey(1, 2, 2))
	assert.Equal(t, "21", RollKey(2, 2, 2))
	assert.Equal(t, "22", RollKey(3, 2, 2))
}

func TestRollKeys_CoverKeySpaceOnce(t *testing.T) {
	for _, size := range []int{4, 8, 9, 16, 27, 81, 625, 1296, 4096, 7776} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			sides, dice, err := FactorPair(size)
			require.NoError(t, err)

			keys, err := RollKeys(size)
			require.NoError(t, err)
			require.Len(t, keys, size)

			seen := make(map[string]bool, size)
			for _, key := range keys {
				require.Len(t, key, dice)
				for _, c := range key {
					require.GreaterOrEqual(t, c, '1')
					require.LessOrEqual(t, c, rune('0'+sides))
				}
				require.False(t, seen[key], "duplicate key %s", key)
				seen[key] = true
			}

			// Same-length digit strings sort lexicographically in roll order.
			assert.True(t, sort.StringsAreSorted(keys))
		})
	}
}

func TestRollKeys_Unsupported(t *testing.T) {
	_, err := RollKeys(7)
	assert.ErrorIs(t, err, domain.ErrUnsupportedWordlistSize)

	_, err = RollKeys(100)
	assert.ErrorIs(t, err, domain.ErrUnsupportedDiceSides)
}

func TestRollKeyDeriver_ComputesPairOnce(t *testing.T) {
	d := &rollKeyDeriver{size: 16}
	assert.Equal(t, 0, d.derivedSides())

	first, err := d.key(0)
	require.NoError(t, err)
	assert.Equal(t, "1111", first)

	// Poison the size: a memoised deriver must not recompute.
	d.size = 7
	last, err := d.key(15)
	require.NoError(t, err)
	assert.Equal(t, "2222", last)
	assert.Equal(t, 2, d.derivedSides())
}

func TestIsqrt(t *testing.T) {
	tests := map[int]int{
		0: 0, 1: 1, 3: 1, 4: 2, 15: 3, 16: 4, 7776: 88, 1 << 40: 1 << 20,
		// Just below (2^31+1)^2: the float square root rounds up to 2^31+1.
		1<<62 + 1<<32: 1 << 31,
		1 << 62:       1 << 31,
	}
	for n, want := range tests {
		assert.Equal(t, want, isqrt(n), "isqrt(%d)", n)
	}
}

func pow(base, exp int) int {
	result := 1
	for range exp {
		result *= base
	}
	return result
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
