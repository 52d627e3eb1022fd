package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// GenerateInput is the input schema for the generate_passphrase tool.
type GenerateInput struct {
	File      string `json:"file,omitempty" jsonschema:"wordlist file to read (default from settings)"`
	Words     int    `json:"words,omitempty" jsonschema:"number of words (default 5)"`
	Entropy   int    `json:"entropy,omitempty" jsonschema:"minimum bits of entropy; overrides words"`
	Dice      int    `json:"dice,omitempty" jsonschema:"dice per word; skips the wordlist and returns raw rolls"`
	Sides     int    `json:"sides,omitempty" jsonschema:"sides per die (default 6)"`
	Delimiter string `json:"delimiter,omitempty" jsonschema:"separator between roll key and word (default tab)"`
	Spacer    string `json:"spacer,omitempty" jsonschema:"separator between words (default space)"`
	ShowRolls bool   `json:"show_rolls,omitempty" jsonschema:"return the rolls instead of the words"`
}

// GenerateOutput is the output schema for the generate_passphrase tool.
type GenerateOutput struct {
	Passphrase   string   `json:"passphrase"`
	Tokens       []string `json:"tokens"`
	WordCount    int      `json:"word_count"`
	WordlistSize int      `json:"wordlist_size"`
	EntropyBits  float64  `json:"entropy_bits"`
}

// CustomRollsInput is the input schema for the make_custom_rolls tool.
type CustomRollsInput struct {
	File      string `json:"file,omitempty" jsonschema:"wordlist file to read (default from settings)"`
	Delimiter string `json:"delimiter,omitempty" jsonschema:"separator between roll key and word (default tab)"`
}

// CustomRollsOutput is the output schema for the make_custom_rolls tool.
type CustomRollsOutput struct {
	Entries []domain.Entry `json:"entries"`
	Count   int            `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_passphrase",
		Description: "Generate a diceware passphrase from a wordlist using a cryptographically secure source",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "make_custom_rolls",
		Description: "List a wordlist's entries with the dice roll that selects each word",
	}, s.handleCustomRolls)
}

// handleGenerate handles the generate_passphrase tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	opts := s.baseOptions()
	if input.File != "" {
		opts.WordlistPath = input.File
	}
	if input.Words > 0 {
		opts.Words = input.Words
		// An explicit word count drops a stored entropy target.
		opts.MinEntropy = 0
	}
	if input.Entropy > 0 {
		opts.MinEntropy = input.Entropy
	}
	if input.Sides > 0 {
		opts.Sides = input.Sides
	}
	if input.Delimiter != "" {
		opts.Delimiter = input.Delimiter
	}
	if input.Spacer != "" {
		opts.Spacer = input.Spacer
	}
	opts.Dice = input.Dice
	opts.ShowRolls = input.ShowRolls
	if err := checkWordlistPath(opts); err != nil {
		return nil, GenerateOutput{}, err
	}

	passphrase, err := s.ports.Passphrase.Generate(ctx, opts)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	tokens := passphrase.Tokens()
	return nil, GenerateOutput{
		Passphrase:   strings.Join(tokens, opts.Spacer),
		Tokens:       tokens,
		WordCount:    passphrase.WordCount(),
		WordlistSize: passphrase.WordlistSize,
		EntropyBits:  passphrase.Entropy(),
	}, nil
}

// handleCustomRolls handles the make_custom_rolls tool invocation.
func (s *Server) handleCustomRolls(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CustomRollsInput,
) (*mcp.CallToolResult, CustomRollsOutput, error) {
	opts := s.baseOptions()
	if input.File != "" {
		opts.WordlistPath = input.File
	}
	if input.Delimiter != "" {
		opts.Delimiter = input.Delimiter
	}
	opts.MakeCustom = true
	if err := checkWordlistPath(opts); err != nil {
		return nil, CustomRollsOutput{}, err
	}

	entries, err := s.ports.Passphrase.CustomRolls(ctx, opts)
	if err != nil {
		return nil, CustomRollsOutput{}, err
	}

	return nil, CustomRollsOutput{Entries: entries, Count: len(entries)}, nil
}

// checkWordlistPath rejects reading the wordlist from stdin, which
// carries the stdio transport while the server runs.
func checkWordlistPath(opts domain.Options) error {
	if opts.WordlistPath == domain.StdinPath && !opts.RawRolls() {
		return fmt.Errorf("%w: the MCP server cannot read a wordlist from stdin; pass a file path",
			domain.ErrInvalidInput)
	}
	return nil
}

// baseOptions returns the stored settings as options, or the built-in
// defaults when no settings service is wired or it fails.
func (s *Server) baseOptions() domain.Options {
	if s.ports.Settings == nil {
		return domain.DefaultOptions()
	}
	settings, err := s.ports.Settings.Get()
	if err != nil || settings == nil {
		return domain.DefaultOptions()
	}
	return settings.Options()
}
