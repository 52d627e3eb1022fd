package driven

// WordlistReader reads a wordlist file.
type WordlistReader interface {
	// ReadLines returns the lines of the file at path, without line
	// terminators. A trailing empty line is not returned.
	ReadLines(path string) ([]string, error)
}
