package driving

import (
	"context"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// PassphraseService generates diceware passphrases.
type PassphraseService interface {
	// Run executes one invocation: it exports custom roll keys when
	// opts.MakeCustom is set, and generates a passphrase otherwise.
	Run(ctx context.Context, opts domain.Options) (*domain.Result, error)

	// Generate rolls a passphrase.
	Generate(ctx context.Context, opts domain.Options) (*domain.Passphrase, error)

	// CustomRolls loads the wordlist and returns its entries with roll keys.
	CustomRolls(ctx context.Context, opts domain.Options) ([]domain.Entry, error)
}
