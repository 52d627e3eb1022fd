package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/core/ports/driven"
)

// DiceRoller rolls dice using an injected random source.
type DiceRoller struct {
	rng driven.Random
}

// NewDiceRoller creates a roller drawing from rng.
func NewDiceRoller(rng driven.Random) *DiceRoller {
	return &DiceRoller{rng: rng}
}

// Roll returns words rolls, each dice independent faces in [1, sides]
// written as decimal digits with no separator.
func (r *DiceRoller) Roll(words, dice, sides int) ([]string, error) {
	if words < 0 || dice < 1 || sides < 1 {
		return nil, fmt.Errorf("%w: cannot roll %d words of %d %d-sided dice",
			domain.ErrInvalidInput, words, dice, sides)
	}

	rolls := make([]string, words)
	var b strings.Builder
	for i := range rolls {
		b.Reset()
		for range dice {
			n, err := r.rng.IntN(sides)
			if err != nil {
				return nil, fmt.Errorf("roll die: %w", err)
			}
			b.WriteString(strconv.Itoa(n + 1))
		}
		rolls[i] = b.String()
	}
	return rolls, nil
}
