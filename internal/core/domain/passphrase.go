package domain

// Passphrase holds the rolls of one run and the words they selected.
type Passphrase struct {
	// Rolls has one digit string per word.
	Rolls []string

	// Words has the looked-up word per roll, NullWord for misses.
	// Nil when no wordlist was used.
	Words []string

	// ShowRolls requests the rolls be shown instead of the words.
	ShowRolls bool

	// WordlistSize is the size of the wordlist used, 0 if none.
	WordlistSize int
}

// WordCount returns the number of words (or rolls) generated.
func (p *Passphrase) WordCount() int {
	return len(p.Rolls)
}

// UsedWordlist returns true if words were looked up in a wordlist.
func (p *Passphrase) UsedWordlist() bool {
	return p.WordlistSize > 0
}

// Tokens returns what should be printed: the words, or the rolls when
// raw rolls were requested or no wordlist was used.
func (p *Passphrase) Tokens() []string {
	if p.ShowRolls || p.Words == nil {
		return p.Rolls
	}
	return p.Words
}

// Entropy returns the bits of entropy achieved, 0 without a wordlist.
func (p *Passphrase) Entropy() float64 {
	return Entropy(p.WordlistSize, p.WordCount())
}

// ResultKind distinguishes the outcomes of a run.
type ResultKind int

const (
	// ResultPassphrase is a generated passphrase.
	ResultPassphrase ResultKind = iota + 1

	// ResultCustomRolls is an export of a wordlist with its roll keys.
	ResultCustomRolls
)

// Result is the outcome of a run. Exactly one of Passphrase and Entries
// is set, according to Kind.
type Result struct {
	Kind       ResultKind
	Passphrase *Passphrase
	Entries    []Entry
}
