package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordlist_PreservesOrder(t *testing.T) {
	w := NewWordlist([]Entry{
		{RollKey: "22", Word: "d"},
		{RollKey: "11", Word: "a"},
		{RollKey: "12", Word: "b"},
	}, 0)

	require.Equal(t, 3, w.Len())
	entries := w.Entries()
	assert.Equal(t, "22", entries[0].RollKey)
	assert.Equal(t, "11", entries[1].RollKey)
	assert.Equal(t, "12", entries[2].RollKey)
}

func TestNewWordlist_DuplicateKeyKeepsPositionTakesLaterWord(t *testing.T) {
	w := NewWordlist([]Entry{
		{RollKey: "11", Word: "a"},
		{RollKey: "12", Word: "b"},
		{RollKey: "11", Word: "z"},
	}, 0)

	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []Entry{{RollKey: "11", Word: "z"}, {RollKey: "12", Word: "b"}}, w.Entries())
}

func TestWordlist_Lookup(t *testing.T) {
	w := NewWordlist([]Entry{{RollKey: "11", Word: "a"}}, 0)

	word, ok := w.Lookup("11")
	assert.True(t, ok)
	assert.Equal(t, "a", word)

	_, ok = w.Lookup("66")
	assert.False(t, ok)
}

func TestWordlist_WordFallsBackToNull(t *testing.T) {
	w := NewWordlist([]Entry{{RollKey: "11", Word: "a"}}, 0)

	assert.Equal(t, "a", w.Word("11"))
	assert.Equal(t, NullWord, w.Word("12"))
	assert.Equal(t, "NULL", w.Word(""))
}

func TestWordlist_EntriesIsACopy(t *testing.T) {
	w := NewWordlist([]Entry{{RollKey: "11", Word: "a"}}, 0)

	entries := w.Entries()
	entries[0].Word = "changed"

	assert.Equal(t, "a", w.Word("11"))
}

func TestWordlist_DiceCount(t *testing.T) {
	w := NewWordlist([]Entry{{RollKey: "11111", Word: "a"}}, 0)
	assert.Equal(t, 5, w.DiceCount())

	assert.Equal(t, 0, NewWordlist(nil, 0).DiceCount())
}

func TestWordlist_Derived(t *testing.T) {
	keyed := NewWordlist([]Entry{{RollKey: "11", Word: "a"}}, 0)
	assert.False(t, keyed.IsDerived())
	assert.Equal(t, 0, keyed.DerivedSides())

	derived := NewWordlist([]Entry{{RollKey: "11", Word: "a"}}, 2)
	assert.True(t, derived.IsDerived())
	assert.Equal(t, 2, derived.DerivedSides())
}

func TestWordlist_NilIsEmpty(t *testing.T) {
	var w *Wordlist

	assert.True(t, w.IsEmpty())
	assert.Equal(t, 0, w.Len())
	assert.Nil(t, w.Entries())
	assert.Equal(t, NullWord, w.Word("11"))
	assert.Equal(t, 0, w.DiceCount())
}
