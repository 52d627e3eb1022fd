package cli

import (
	"io"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// writePassphrase writes tokens separated by spacer and ends the line.
// Each token is flushed as it is written.
func writePassphrase(w io.Writer, tokens []string, spacer string) error {
	for i, token := range tokens {
		if i > 0 {
			if _, err := io.WriteString(w, spacer); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, token); err != nil {
			return err
		}
		if err := flush(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return flush(w)
}

// writeEntries writes one "key<delimiter>word" line per entry.
func writeEntries(w io.Writer, entries []domain.Entry, delimiter string) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, e.RollKey+delimiter+e.Word+"\n"); err != nil {
			return err
		}
		if err := flush(w); err != nil {
			return err
		}
	}
	return nil
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
