package services

import (
	"math"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/logger"
)

// FactorPair finds the dice that can key a wordlist of n words: the pair
// with the fewest sides, then the fewest dice, such that sides^dice == n
// with sides, dice >= 2.
//
// It returns an *domain.UnsupportedWordlistSizeError when n is not a
// perfect power, and an *domain.UnsupportedDiceSidesError when the pair
// needs more than domain.MaxDerivedSides sides.
func FactorPair(n int) (sides, dice int, err error) {
	limit := isqrt(n) + 1
	for s := domain.MinDerivedSides; s <= limit; s++ {
		p := s * s
		for d := domain.MinDerivedDice; p <= n; d++ {
			if p == n {
				if s > domain.MaxDerivedSides {
					return 0, 0, &domain.UnsupportedDiceSidesError{Size: n, Sides: s}
				}
				return s, d, nil
			}
			p *= s
		}
	}

	below, above := nearestSupportedSizes(n)
	return 0, 0, &domain.UnsupportedWordlistSizeError{Size: n, Below: below, Above: above}
}

// RollKey returns the index-th roll, in lexicographic order, of dice dice
// with faces 1..sides. The last die varies fastest, so index 0 is "11..1"
// and index sides^dice-1 is all sides.
func RollKey(index, sides, dice int) string {
	buf := make([]byte, dice)
	for j := dice - 1; j >= 0; j-- {
		buf[j] = byte('1' + index%sides)
		index /= sides
	}
	return string(buf)
}

// RollKeys returns the full ordered key space for a wordlist of n words.
func RollKeys(n int) ([]string, error) {
	sides, dice, err := FactorPair(n)
	if err != nil {
		return nil, err
	}
	keys := make([]string, n)
	for i := range keys {
		keys[i] = RollKey(i, sides, dice)
	}
	return keys, nil
}

// rollKeyDeriver assigns keys to the unkeyed lines of one wordlist.
// The factor pair is computed on first use only.
type rollKeyDeriver struct {
	size  int
	sides int
	dice  int
	err   error
	done  bool
}

func (d *rollKeyDeriver) key(index int) (string, error) {
	if !d.done {
		d.sides, d.dice, d.err = FactorPair(d.size)
		d.done = true
		if d.err == nil {
			logger.Debug("Derived roll keys: %d words = %d sides ^ %d dice", d.size, d.sides, d.dice)
		}
	}
	if d.err != nil {
		return "", d.err
	}
	return RollKey(index, d.sides, d.dice), nil
}

// derivedSides returns the side count keys were generated for, 0 if none were.
func (d *rollKeyDeriver) derivedSides() int {
	if !d.done || d.err != nil {
		return 0
	}
	return d.sides
}

// nearestSupportedSizes returns the closest sizes below and above n that
// can be keyed with 2..9 sided dice, 0 where there is none.
func nearestSupportedSizes(n int) (below, above int) {
	for s := domain.MinDerivedSides; s <= domain.MaxDerivedSides; s++ {
		for p := s * s; ; p *= s {
			if p < n {
				below = max(below, p)
				continue
			}
			if p > n && (above == 0 || p < above) {
				above = p
			}
			break
		}
	}
	return below, above
}

// isqrt returns floor(sqrt(n)). The float estimate can be off by one for
// large n, so it is corrected with integer arithmetic. FactorPair only
// uses it as an upper bound on sides; any exact match above
// domain.MaxDerivedSides is reported as unsupported anyway.
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
