package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/core/ports/driven"
	"github.com/custodia-labs/nodice/internal/core/ports/driving"
	"github.com/custodia-labs/nodice/internal/logger"
)

// Ensure PassphraseService implements the interface.
var _ driving.PassphraseService = (*PassphraseService)(nil)

// PassphraseService runs the diceware pipeline.
type PassphraseService struct {
	loader *WordlistLoader
	roller *DiceRoller
}

// NewPassphraseService creates a passphrase service reading wordlists
// through reader and rolling dice with rng.
func NewPassphraseService(reader driven.WordlistReader, rng driven.Random) *PassphraseService {
	return &PassphraseService{
		loader: NewWordlistLoader(reader),
		roller: NewDiceRoller(rng),
	}
}

// Run executes one invocation. Export mode returns the wordlist entries
// without rolling any dice.
func (s *PassphraseService) Run(ctx context.Context, opts domain.Options) (*domain.Result, error) {
	if opts.MakeCustom {
		entries, err := s.CustomRolls(ctx, opts)
		if err != nil {
			return nil, err
		}
		return &domain.Result{Kind: domain.ResultCustomRolls, Entries: entries}, nil
	}

	passphrase, err := s.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &domain.Result{Kind: domain.ResultPassphrase, Passphrase: passphrase}, nil
}

// CustomRolls loads the wordlist and returns its entries in order, with
// roll keys derived for any unkeyed lines.
func (s *PassphraseService) CustomRolls(ctx context.Context, opts domain.Options) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}
	if opts.RawRolls() {
		return nil, fmt.Errorf("%w: custom rolls need a wordlist, but --dice skips it", domain.ErrInvalidInput)
	}

	wordlist, err := s.loader.Load(opts.WordlistPath, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	return wordlist.Entries(), nil
}

// Generate rolls a passphrase.
func (s *PassphraseService) Generate(ctx context.Context, opts domain.Options) (*domain.Passphrase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	plan, err := s.Plan(opts)
	if err != nil {
		return nil, err
	}

	logger.Section("Dice")
	logger.Debug("Words: %d, dice: %d, sides: %d", plan.Words, plan.Dice, plan.Sides)

	rolls, err := s.roller.Roll(plan.Words, plan.Dice, plan.Sides)
	if err != nil {
		return nil, err
	}

	return LookupWords(rolls, plan.Wordlist, opts.ShowRolls), nil
}

// Plan derives word count, dice and sides from opts, loading the wordlist
// unless explicit dice and sides were given. Explicit dice always win:
// no wordlist is read and no roll keys are derived.
func (s *PassphraseService) Plan(opts domain.Options) (domain.Plan, error) {
	if opts.RawRolls() {
		logger.Info("Raw roll mode: %d dice, %d sides, wordlist skipped", opts.Dice, opts.Sides)
		return domain.Plan{Words: opts.Words, Dice: opts.Dice, Sides: opts.Sides}, nil
	}

	wordlist, err := s.loader.Load(opts.WordlistPath, opts.Delimiter)
	if err != nil {
		return domain.Plan{}, err
	}

	words, err := ResolveWordCount(opts.MinEntropy, opts.Words, wordlist.Len())
	if err != nil {
		return domain.Plan{}, err
	}
	if opts.MinEntropy > 0 {
		logger.Debug("%d bits of entropy need %d words", opts.MinEntropy, words)
	}

	sides := opts.Sides
	if wordlist.IsDerived() {
		sides = wordlist.DerivedSides()
	}

	return domain.Plan{
		Wordlist: wordlist,
		Words:    words,
		Dice:     wordlist.DiceCount(),
		Sides:    sides,
	}, nil
}

// LookupWords maps rolls to words. Rolls missing from the wordlist map to
// domain.NullWord. A nil wordlist yields a passphrase of raw rolls.
func LookupWords(rolls []string, wordlist *domain.Wordlist, showRolls bool) *domain.Passphrase {
	p := &domain.Passphrase{
		Rolls:     rolls,
		ShowRolls: showRolls,
	}
	if wordlist.IsEmpty() {
		return p
	}

	p.WordlistSize = wordlist.Len()
	p.Words = make([]string, len(rolls))
	for i, roll := range rolls {
		p.Words[i] = wordlist.Word(roll)
	}
	return p
}
