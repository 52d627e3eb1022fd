// Package file reads wordlists from the local filesystem.
package file

import (
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/core/ports/driven"
)

// StdinPath is the wordlist path that reads standard input.
const StdinPath = domain.StdinPath

// Ensure Reader implements the interface.
var _ driven.WordlistReader = (*Reader)(nil)

// Reader is a driven.WordlistReader for files and standard input.
type Reader struct {
	stdin io.Reader
}

// NewReader creates a reader; the path "-" reads from stdin.
func NewReader(stdin io.Reader) *Reader {
	return &Reader{stdin: stdin}
}

// ReadLines returns the lines of the file at path.
func (r *Reader) ReadLines(path string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if path == StdinPath && r.stdin != nil {
		data, err = io.ReadAll(r.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on "\n", dropping a single trailing empty line
// and any "\r" left by CRLF line endings.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
