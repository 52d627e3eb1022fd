// Command nodice generates diceware passphrases.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/nodice/internal/adapters/driven/config/env"
	"github.com/custodia-labs/nodice/internal/adapters/driven/config/file"
	"github.com/custodia-labs/nodice/internal/adapters/driven/random/crypto"
	wordlistfile "github.com/custodia-labs/nodice/internal/adapters/driven/wordlist/file"
	"github.com/custodia-labs/nodice/internal/adapters/driving/cli"
	"github.com/custodia-labs/nodice/internal/core/ports/driving"
	"github.com/custodia-labs/nodice/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	passphrase := services.NewPassphraseService(wordlistfile.NewReader(os.Stdin), crypto.New())

	cli.SetVersion(version)
	cli.SetServices(passphrase, nil)
	cli.SetSettingsFactory(openSettings)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store, env.Apply), nil
}
