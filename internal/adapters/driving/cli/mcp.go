package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nodice/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC. It offers two tools:
  generate_passphrase  roll a passphrase, optionally for a target entropy
  make_custom_rolls    list a wordlist's entries with their roll keys

Arguments left out of a tool call take the stored settings.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "nodice": {
        "command": "/path/to/nodice",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() (*mcp.Server, error) {
	if passphraseService == nil {
		return nil, errors.New("passphrase service not configured")
	}
	return mcp.NewServer(&mcp.Ports{
		Passphrase: passphraseService,
		Settings:   settingsService,
	})
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := newMCPServer()
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}
