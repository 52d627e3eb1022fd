package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// Report colours.
var (
	mutedColour   = lipgloss.Color("#6C7086")
	successColour = lipgloss.Color("#A6E3A1")
	warningColour = lipgloss.Color("#F9E2AF")

	reportStyle = lipgloss.NewStyle().Foreground(mutedColour)
	strongStyle = lipgloss.NewStyle().Foreground(successColour).Bold(true)
	weakStyle   = lipgloss.NewStyle().Foreground(warningColour).Bold(true)
)

// strongBits is the entropy at which a passphrase is shown as strong.
const strongBits = 64

// entropyReport describes the strength of p.
func entropyReport(p *domain.Passphrase) string {
	if !p.UsedWordlist() {
		return "No words found."
	}
	return fmt.Sprintf("> %d random words from a %d-word list yield %.1f bits of entropy.",
		p.WordCount(), p.WordlistSize, p.Entropy())
}

// styledReport renders the report for a terminal, colouring it by
// whether the entropy reaches strongBits.
func styledReport(p *domain.Passphrase) string {
	report := entropyReport(p)
	switch {
	case !p.UsedWordlist():
		return reportStyle.Render(report)
	case p.Entropy() >= strongBits:
		return strongStyle.Render(report)
	default:
		return weakStyle.Render(report)
	}
}

// writeReport writes the entropy report after a blank line, styled only
// when w is a terminal.
func writeReport(w io.Writer, p *domain.Passphrase) error {
	report := entropyReport(p)
	if isTerminal(w) {
		report = styledReport(p)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", report)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
