package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage stored defaults",
	Long: `View and change the defaults used when flags are not given.

Settings are stored in config.toml under the config directory.
NODICE_* environment variables override stored values, and flags
override both.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a stored setting",
	Long: `Validate and store a single setting.

Keys:
  wordlist.path       wordlist file
  wordlist.delimiter  separator between roll key and word (\t for tab)
  passphrase.spacer   separator between words
  passphrase.words    number of words
  passphrase.entropy  minimum bits of entropy (0 to use words)
  dice.sides          sides per die`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	service, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := service.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	values := settingValues(settings)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "File: %s\n\n", service.Path())
	for _, key := range service.Keys() {
		fmt.Fprintf(out, "  %-20s %s\n", key, values[key])
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	service, err := requireSettings()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := service.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, strconv.Quote(value))
	return nil
}

// settingValues renders settings by key. Strings are quoted so that
// whitespace separators stay visible.
func settingValues(s *domain.Settings) map[string]string {
	return map[string]string{
		"wordlist.path":      strconv.Quote(s.WordlistPath),
		"wordlist.delimiter": strconv.Quote(s.Delimiter),
		"passphrase.spacer":  strconv.Quote(s.Spacer),
		"passphrase.words":   strconv.Itoa(s.Words),
		"passphrase.entropy": strconv.Itoa(s.Entropy),
		"dice.sides":         strconv.Itoa(s.Sides),
	}
}
