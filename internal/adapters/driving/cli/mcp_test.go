package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"mcp", "serve"})

	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Use)
}

func TestNewMCPServer(t *testing.T) {
	setupTestServices(t)

	server, err := newMCPServer()

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewMCPServer_NoService(t *testing.T) {
	setupTestServices(t)
	passphraseService = nil

	server, err := newMCPServer()

	require.Error(t, err)
	assert.Nil(t, server)
}
