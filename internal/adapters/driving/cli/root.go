// Package cli provides the cobra command tree for nodice.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nodice/internal/core/domain"
	"github.com/custodia-labs/nodice/internal/core/ports/driving"
	"github.com/custodia-labs/nodice/internal/logger"
)

// Exit codes returned by ExitCode.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitLoadError = 2
)

// SettingsFactory opens the settings service for a config directory.
// An empty directory selects the default location.
type SettingsFactory func(configDir string) (driving.SettingsService, error)

var (
	version = "dev"

	passphraseService driving.PassphraseService
	settingsService   driving.SettingsService
	settingsFactory   SettingsFactory
	settingsErr       error

	debug     bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "nodice",
	Short: "Generate diceware passphrases",
	Long: `nodice generates diceware passphrases without physical dice.

Each word is chosen by rolling virtual dice with a cryptographically
secure source and looking the roll up in a wordlist. Wordlists may be
keyed ("11111<TAB>abacus") or plain, one word per line, in which case
roll keys are derived from the list size.

Examples:
  nodice                      5 words from the default list
  nodice -e 80                enough words for 80 bits of entropy
  nodice -f words.txt -t ':'  a keyed list using ':' between roll and word
  nodice -m -f plain.txt      print the roll key for every word
  nodice -d 5 -D 6 -w 3       three raw 5-dice rolls, no wordlist`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "settings directory (default ~/.nodice)")
	addGenerateFlags(rootCmd)
}

// SetServices wires the core services into the command tree.
func SetServices(passphrase driving.PassphraseService, settings driving.SettingsService) {
	passphraseService = passphrase
	settingsService = settings
}

// SetSettingsFactory sets how the settings service is opened when it was
// not wired directly. It is called once per run, after flags are parsed.
func SetSettingsFactory(factory SettingsFactory) {
	settingsFactory = factory
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit code.
// Wordlist load failures exit with ExitLoadError; every other error,
// unsupported wordlist shapes included, exits with ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrWordlistLoad):
		return ExitLoadError
	default:
		return ExitFailure
	}
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetDebug(debug)

	if settingsService != nil || settingsFactory == nil {
		return nil
	}

	service, err := settingsFactory(configDir)
	if err != nil {
		settingsErr = err
		logger.Debug("Settings unavailable: %v", err)
		return nil
	}
	settingsService = service
	logger.Debug("Settings: %s", service.Path())
	return nil
}

// requireSettings returns the settings service or the reason it is missing.
func requireSettings() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if settingsErr != nil {
		return nil, settingsErr
	}
	return nil, errors.New("settings service not configured")
}
