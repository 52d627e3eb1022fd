package domain

// Defaults for a run, matching the CLI flag defaults.
const (
	DefaultWords        = 5
	DefaultSides        = 6
	DefaultSpacer       = " "
	DefaultDelimiter    = "\t"
	DefaultWordlistPath = "wordlists/eff_large_wordlist.txt"

	// StdinPath is the wordlist path that reads standard input.
	StdinPath = "-"
)

// Options is the configuration of a single run. It is built once from
// flags and settings and never modified; derived values (dice, sides,
// word count) live on the Plan instead.
type Options struct {
	// WordlistPath is the wordlist file to read.
	WordlistPath string `flag:"file" validate:"required_without=Dice"`

	// MinEntropy is the target entropy in bits. Zero keeps Words.
	MinEntropy int `flag:"entropy" validate:"gte=0"`

	// Dice is the number of dice per word. Zero derives it from the wordlist.
	Dice int `flag:"dice" validate:"gte=0"`

	// Sides is the number of sides per die.
	Sides int `flag:"sides" validate:"gte=1"`

	// Words is the number of words to generate when MinEntropy is zero.
	Words int `flag:"words" validate:"gte=1"`

	// Delimiter separates roll key and word in wordlist lines.
	Delimiter string `flag:"delimiter" validate:"required"`

	// Spacer separates the words of the passphrase.
	Spacer string

	// ShowRolls prints raw rolls instead of looking up words.
	ShowRolls bool

	// MakeCustom exports the roll keys of the wordlist instead of rolling.
	MakeCustom bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		WordlistPath: DefaultWordlistPath,
		Sides:        DefaultSides,
		Words:        DefaultWords,
		Delimiter:    DefaultDelimiter,
		Spacer:       DefaultSpacer,
	}
}

// RawRolls returns true when explicit dice and sides were given, in which
// case no wordlist is read and rolls are printed as-is.
func (o Options) RawRolls() bool {
	return o.Dice != 0 && o.Sides != 0
}

// Plan holds the values derived from Options and the loaded wordlist.
type Plan struct {
	Wordlist *Wordlist
	Words    int
	Dice     int
	Sides    int
}
