package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for nodice resources.
	uriScheme = "nodice://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Stored defaults used when tool arguments are omitted",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "settings/{key}",
		Name:        "setting",
		Description: "A single stored setting, such as dice.sides",
		MIMEType:    "text/plain",
	}, s.handleSettingResource)
}

// settingsValues returns the current settings keyed by setting key.
func (s *Server) settingsValues() (map[string]any, error) {
	if s.ports.Settings == nil {
		return map[string]any{}, nil
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return map[string]any{
		"wordlist.path":      settings.WordlistPath,
		"wordlist.delimiter": settings.Delimiter,
		"passphrase.spacer":  settings.Spacer,
		"passphrase.words":   settings.Words,
		"passphrase.entropy": settings.Entropy,
		"dice.sides":         settings.Sides,
	}, nil
}

// handleSettingsResource returns all settings as JSON.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	values, err := s.settingsValues()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSettingResource returns one setting as plain text.
func (s *Server) handleSettingResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	key := extractSettingKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	values, err := s.settingsValues()
	if err != nil {
		return nil, err
	}
	value, ok := values[key]
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     fmt.Sprint(value),
		}},
	}, nil
}

// extractSettingKey extracts the key from a URI like nodice://settings/{key}.
func extractSettingKey(uri string) string {
	const prefix = uriScheme + "settings/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
