package services

import (
	"fmt"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// ResolveWordCount returns the number of words to roll. With no entropy
// target it returns words unchanged; otherwise the fewest words from a
// list of wordlistSize that reach minEntropy bits.
func ResolveWordCount(minEntropy, words, wordlistSize int) (int, error) {
	if minEntropy == 0 {
		return words, nil
	}
	if wordlistSize < 2 {
		return 0, fmt.Errorf("%w: a wordlist of %d words cannot reach %d bits of entropy",
			domain.ErrInvalidInput, wordlistSize, minEntropy)
	}
	return domain.WordsForEntropy(wordlistSize, minEntropy), nil
}
