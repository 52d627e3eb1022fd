package mcp

import (
	"context"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// mockPassphraseService is a mock implementation of driving.PassphraseService.
// It records the options of the last call.
type mockPassphraseService struct {
	passphrase *domain.Passphrase
	entries    []domain.Entry
	err        error
	lastOpts   domain.Options
}

func (m *mockPassphraseService) Run(_ context.Context, opts domain.Options) (*domain.Result, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if opts.MakeCustom {
		return &domain.Result{Kind: domain.ResultCustomRolls, Entries: m.entries}, nil
	}
	return &domain.Result{Kind: domain.ResultPassphrase, Passphrase: m.passphrase}, nil
}

func (m *mockPassphraseService) Generate(_ context.Context, opts domain.Options) (*domain.Passphrase, error) {
	m.lastOpts = opts
	return m.passphrase, m.err
}

func (m *mockPassphraseService) CustomRolls(_ context.Context, opts domain.Options) ([]domain.Entry, error) {
	m.lastOpts = opts
	return m.entries, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.Settings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) Path() string {
	return ":memory:"
}
