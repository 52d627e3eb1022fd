package domain

// Settings are the persisted defaults for the CLI flags.
// Environment variables named in the env tags override stored values.
type Settings struct {
	WordlistPath string `key:"wordlist.path" env:"NODICE_WORDLIST" validate:"required"`
	Delimiter    string `key:"wordlist.delimiter" env:"NODICE_DELIMITER" validate:"required"`
	Spacer       string `key:"passphrase.spacer" env:"NODICE_SPACER"`
	Words        int    `key:"passphrase.words" env:"NODICE_WORDS" validate:"gte=1"`
	Entropy      int    `key:"passphrase.entropy" env:"NODICE_ENTROPY" validate:"gte=0"`
	Sides        int    `key:"dice.sides" env:"NODICE_SIDES" validate:"gte=1"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		WordlistPath: DefaultWordlistPath,
		Delimiter:    DefaultDelimiter,
		Spacer:       DefaultSpacer,
		Words:        DefaultWords,
		Sides:        DefaultSides,
	}
}

// Options returns run options seeded from the settings.
func (s Settings) Options() Options {
	return Options{
		WordlistPath: s.WordlistPath,
		MinEntropy:   s.Entropy,
		Sides:        s.Sides,
		Words:        s.Words,
		Delimiter:    s.Delimiter,
		Spacer:       s.Spacer,
	}
}
