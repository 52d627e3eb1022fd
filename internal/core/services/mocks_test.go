package services

import (
	"errors"
	"fmt"
)

// mockReader implements driven.WordlistReader for testing.
type mockReader struct {
	files map[string][]string
	err   error
	reads int
}

func (m *mockReader) ReadLines(path string) ([]string, error) {
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	lines, ok := m.files[path]
	if !ok {
		return nil, errors.New("open " + path + ": no such file or directory")
	}
	return lines, nil
}

// sequenceRandom implements driven.Random, returning values in order
// (each taken modulo n) and cycling when exhausted.
type sequenceRandom struct {
	values []int
	next   int
	err    error
	calls  int
}

func (r *sequenceRandom) IntN(n int) (int, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	if len(r.values) == 0 {
		return 0, nil
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n, nil
}

// numberedWords returns n distinct bare words.
func numberedWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	return words
}
