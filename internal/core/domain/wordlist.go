package domain

// NullWord is printed for a roll that has no entry in the wordlist.
const NullWord = "NULL"

// Bounds on the dice a wordlist can be auto-keyed for. Keys concatenate
// one decimal digit per die, so sides stop at 9.
const (
	MinDerivedSides = 2
	MaxDerivedSides = 9
	MinDerivedDice  = 2
)

// Entry pairs a roll key with the word it selects.
type Entry struct {
	// RollKey is one digit per die, e.g. "11426".
	RollKey string `json:"roll"`
	Word    string `json:"word"`
}

// Wordlist maps roll keys to words, preserving first-insertion order.
// A Wordlist is built once and is read-only afterwards.
type Wordlist struct {
	entries []Entry
	index   map[string]int
	sides   int
}

// NewWordlist builds a wordlist from entries in order. A repeated key
// keeps its first position and takes the later word. derivedSides is the
// side count the keys were generated for, or 0 for an explicitly keyed list.
func NewWordlist(entries []Entry, derivedSides int) *Wordlist {
	w := &Wordlist{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		sides:   derivedSides,
	}
	for _, e := range entries {
		if i, ok := w.index[e.RollKey]; ok {
			w.entries[i].Word = e.Word
			continue
		}
		w.index[e.RollKey] = len(w.entries)
		w.entries = append(w.entries, e)
	}
	return w
}

// Len returns the number of distinct roll keys.
func (w *Wordlist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// IsEmpty returns true if the wordlist is nil or has no entries.
func (w *Wordlist) IsEmpty() bool {
	return w.Len() == 0
}

// Lookup returns the word for a roll key.
func (w *Wordlist) Lookup(roll string) (string, bool) {
	if w == nil {
		return "", false
	}
	i, ok := w.index[roll]
	if !ok {
		return "", false
	}
	return w.entries[i].Word, true
}

// Word returns the word for a roll key, or NullWord when absent.
func (w *Wordlist) Word(roll string) string {
	if word, ok := w.Lookup(roll); ok {
		return word
	}
	return NullWord
}

// Entries returns a copy of the entries in iteration order.
func (w *Wordlist) Entries() []Entry {
	if w == nil {
		return nil
	}
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// DiceCount returns the number of dice per word, taken from the first key.
func (w *Wordlist) DiceCount() int {
	if w.IsEmpty() {
		return 0
	}
	return len(w.entries[0].RollKey)
}

// DerivedSides returns the side count the keys were generated for,
// or 0 if the list was explicitly keyed.
func (w *Wordlist) DerivedSides() int {
	if w == nil {
		return 0
	}
	return w.sides
}

// IsDerived returns true if the roll keys were generated rather than read.
func (w *Wordlist) IsDerived() bool {
	return w.DerivedSides() > 0
}
