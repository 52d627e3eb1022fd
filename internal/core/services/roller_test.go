package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

func TestDiceRoller_Roll(t *testing.T) {
	rng := &sequenceRandom{values: []int{0, 1, 2, 3, 4, 5}}
	roller := NewDiceRoller(rng)

	rolls, err := roller.Roll(2, 3, 6)

	require.NoError(t, err)
	assert.Equal(t, []string{"123", "456"}, rolls)
	assert.Equal(t, 6, rng.calls)
}

func TestDiceRoller_FacesStayInRange(t *testing.T) {
	// IntN values are reduced modulo sides, so 5 on a 4-sided die is face 2.
	roller := NewDiceRoller(&sequenceRandom{values: []int{3, 5, 0}})

	rolls, err := roller.Roll(1, 3, 4)

	require.NoError(t, err)
	assert.Equal(t, []string{"421"}, rolls)
}

func TestDiceRoller_ZeroWords(t *testing.T) {
	roller := NewDiceRoller(&sequenceRandom{})

	rolls, err := roller.Roll(0, 5, 6)

	require.NoError(t, err)
	assert.Empty(t, rolls)
}

func TestDiceRoller_InvalidDice(t *testing.T) {
	roller := NewDiceRoller(&sequenceRandom{})

	_, err := roller.Roll(5, 0, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = roller.Roll(5, 5, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDiceRoller_RandomFailure(t *testing.T) {
	roller := NewDiceRoller(&sequenceRandom{err: errors.New("entropy exhausted")})

	_, err := roller.Roll(1, 5, 6)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}
