package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nodice/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/nodice/internal/adapters/driven/random/seeded"
	"github.com/custodia-labs/nodice/internal/adapters/driven/wordlist/file"
	"github.com/custodia-labs/nodice/internal/core/services"
)

// setupTestServices wires real services over a seeded random source and
// an in-memory settings store, restoring the package state afterwards.
func setupTestServices(t *testing.T) *services.SettingsService {
	t.Helper()

	oldPassphrase, oldSettings := passphraseService, settingsService
	oldFactory, oldErr := settingsFactory, settingsErr
	t.Cleanup(func() {
		passphraseService, settingsService = oldPassphrase, oldSettings
		settingsFactory, settingsErr = oldFactory, oldErr
	})

	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(services.NewPassphraseService(file.NewReader(nil), seeded.New(42)), settings)
	settingsFactory, settingsErr = nil, nil
	return settings
}

// resetFlags returns every flag to its default so runs do not leak
// into each other through the shared command tree.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

// executeCommand runs the command tree with args and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

// writeWordlist writes lines to a temporary wordlist file.
func writeWordlist(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

// plainWords returns n unkeyed words.
func plainWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	return words
}
