package domain

import "math"

// BitsPerWord returns log2 of the wordlist size.
func BitsPerWord(size int) float64 {
	if size < 1 {
		return 0
	}
	return math.Log2(float64(size))
}

// Entropy returns the bits of entropy of words drawn uniformly from a
// list of the given size.
func Entropy(size, words int) float64 {
	return BitsPerWord(size) * float64(words)
}

// WordsForEntropy returns the fewest words from a list of the given size
// that reach minBits. It returns 0 when size < 2, since such a list
// contributes no entropy.
func WordsForEntropy(size, minBits int) int {
	if size < 2 {
		return 0
	}
	return int(math.Ceil(float64(minBits) / BitsPerWord(size)))
}
