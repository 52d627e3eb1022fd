package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrWordlistLoad indicates the wordlist file could not be read.
	ErrWordlistLoad = errors.New("wordlist could not be loaded")

	// ErrEmptyWordlist indicates the wordlist file holds no entries.
	ErrEmptyWordlist = errors.New("wordlist is empty")

	// Roll-key derivation errors.

	// ErrUnsupportedWordlistSize indicates an unkeyed wordlist whose size
	// is not sides^dice for any sides, dice >= 2.
	ErrUnsupportedWordlistSize = errors.New("unsupported wordlist size")

	// ErrUnsupportedDiceSides indicates an unkeyed wordlist that needs dice
	// with more sides than a single decimal digit can show.
	ErrUnsupportedDiceSides = errors.New("unsupported dice sides")
)

// WordlistLoadError reports a wordlist file that could not be read.
type WordlistLoadError struct {
	Path string
	Err  error
}

func (e *WordlistLoadError) Error() string {
	return fmt.Sprintf("cannot read wordlist %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read error.
func (e *WordlistLoadError) Unwrap() error { return e.Err }

// Is matches ErrWordlistLoad.
func (e *WordlistLoadError) Is(target error) bool { return target == ErrWordlistLoad }

// UnsupportedWordlistSizeError reports an unkeyed wordlist of Size words
// that is not a perfect power. Below and Above are the nearest sizes that
// would be supported, or zero when none exists on that side.
type UnsupportedWordlistSizeError struct {
	Size  int
	Below int
	Above int
}

func (e *UnsupportedWordlistSizeError) Error() string {
	msg := fmt.Sprintf("wordlist of %d words is not a perfect power (sides^dice)", e.Size)
	switch {
	case e.Below > 0 && e.Above > 0:
		return fmt.Sprintf("%s; resize it to %d or %d words", msg, e.Below, e.Above)
	case e.Above > 0:
		return fmt.Sprintf("%s; resize it to %d words", msg, e.Above)
	case e.Below > 0:
		return fmt.Sprintf("%s; resize it to %d words", msg, e.Below)
	default:
		return msg + "; resize it"
	}
}

// Is matches ErrUnsupportedWordlistSize.
func (e *UnsupportedWordlistSizeError) Is(target error) bool {
	return target == ErrUnsupportedWordlistSize
}

// UnsupportedDiceSidesError reports an unkeyed wordlist of Size words whose
// smallest factorisation needs Sides-sided dice.
type UnsupportedDiceSidesError struct {
	Size  int
	Sides int
}

func (e *UnsupportedDiceSidesError) Error() string {
	return fmt.Sprintf("wordlist of %d words requires %d-sided dice; at most %d sides are supported",
		e.Size, e.Sides, MaxDerivedSides)
}

// Is matches ErrUnsupportedDiceSides.
func (e *UnsupportedDiceSidesError) Is(target error) bool {
	return target == ErrUnsupportedDiceSides
}
