package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/logger"
)

// generateFlags holds the values of the root command's flags.
type generateFlags struct {
	words      int
	entropy    int
	spacer     string
	dice       int
	sides      int
	showRolls  bool
	makeCustom bool
	file       string
	delimiter  string
	verbose    bool
}

var genFlags generateFlags

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&genFlags.words, "words", "w", domain.DefaultWords, "number of words to generate")
	f.IntVarP(&genFlags.entropy, "entropy", "e", 0, "minimum bits of entropy; overrides --words")
	f.StringVarP(&genFlags.spacer, "spacer", "s", domain.DefaultSpacer, "separator between words")
	f.IntVarP(&genFlags.dice, "dice", "d", 0, "dice per word; with --sides, print raw rolls without a wordlist")
	f.IntVarP(&genFlags.sides, "sides", "D", domain.DefaultSides, "sides per die")
	f.BoolVarP(&genFlags.showRolls, "show-rolls", "r", false, "print the rolls instead of the words")
	f.BoolVarP(&genFlags.makeCustom, "make-custom", "m", false, "print every roll key and word of the wordlist, then exit")
	f.StringVarP(&genFlags.file, "file", "f", domain.DefaultWordlistPath, "wordlist file, or - for stdin")
	f.StringVarP(&genFlags.delimiter, "delimiter", "t", domain.DefaultDelimiter, "separator between roll key and word in the wordlist")
	f.BoolVarP(&genFlags.verbose, "verbose", "v", false, "print an entropy report after the passphrase")

	cmd.MarkFlagsMutuallyExclusive("make-custom", "dice")
	cmd.MarkFlagsMutuallyExclusive("make-custom", "show-rolls")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if passphraseService == nil {
		return errors.New("passphrase service not configured")
	}

	opts := buildOptions(cmd)

	result, err := passphraseService.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch result.Kind {
	case domain.ResultCustomRolls:
		return writeEntries(out, result.Entries, opts.Delimiter)
	default:
		if err := writePassphrase(out, result.Passphrase.Tokens(), opts.Spacer); err != nil {
			return err
		}
		if genFlags.verbose {
			return writeReport(out, result.Passphrase)
		}
		return nil
	}
}

// buildOptions layers explicitly set flags over the stored settings.
// Without usable settings the flag defaults apply.
func buildOptions(cmd *cobra.Command) domain.Options {
	opts := domain.DefaultOptions()
	switch {
	case settingsService != nil:
		settings, err := settingsService.Get()
		if err != nil {
			logger.Warn("ignoring stored settings: %v", err)
			break
		}
		opts = settings.Options()
	case settingsErr != nil:
		logger.Warn("ignoring stored settings: %v", settingsErr)
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		opts.WordlistPath = genFlags.file
	}
	if flags.Changed("delimiter") {
		opts.Delimiter = genFlags.delimiter
	}
	if flags.Changed("spacer") {
		opts.Spacer = genFlags.spacer
	}
	if flags.Changed("words") {
		opts.Words = genFlags.words
		// An explicit word count drops a stored entropy target.
		opts.MinEntropy = 0
	}
	if flags.Changed("entropy") {
		opts.MinEntropy = genFlags.entropy
	}
	if flags.Changed("sides") {
		opts.Sides = genFlags.sides
	}
	opts.Dice = genFlags.dice
	opts.ShowRolls = genFlags.showRolls
	opts.MakeCustom = genFlags.makeCustom

	logger.Debug("Options: %+v", opts)
	return opts
}
