package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/core/ports/driven"
	"github.com/custodia-labs/nodice/internal/logger"
)

// WordlistLoader reads wordlist files into a domain.Wordlist.
type WordlistLoader struct {
	reader driven.WordlistReader
}

// NewWordlistLoader creates a loader reading files through reader.
func NewWordlistLoader(reader driven.WordlistReader) *WordlistLoader {
	return &WordlistLoader{reader: reader}
}

// Load reads the wordlist at path. Lines containing delimiter are split
// on its first occurrence into roll key and word; other lines get a roll
// key derived from their index.
func (l *WordlistLoader) Load(path, delimiter string) (*domain.Wordlist, error) {
	logger.Section("Wordlist")
	logger.Debug("Path: %s", path)

	lines, err := l.reader.ReadLines(path)
	if err != nil {
		return nil, &domain.WordlistLoadError{Path: path, Err: err}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyWordlist, path)
	}

	wordlist, err := ParseWordlist(lines, delimiter)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded %d words, %d dice per word", wordlist.Len(), wordlist.DiceCount())
	return wordlist, nil
}

// ParseWordlist builds a wordlist from lines. Keys for lines without
// delimiter are derived from the total line count.
func ParseWordlist(lines []string, delimiter string) (*domain.Wordlist, error) {
	if delimiter == "" {
		return nil, fmt.Errorf("%w: empty delimiter", domain.ErrInvalidInput)
	}

	deriver := &rollKeyDeriver{size: len(lines)}
	entries := make([]domain.Entry, 0, len(lines))
	for i, line := range lines {
		if key, word, ok := strings.Cut(line, delimiter); ok {
			entries = append(entries, domain.Entry{RollKey: key, Word: word})
			continue
		}

		key, err := deriver.key(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.Entry{RollKey: key, Word: line})
	}

	return domain.NewWordlist(entries, deriver.derivedSides()), nil
}
