package mcp

import (
	"context"

	"github.com/custodia-labs/keyscan/internal/core/domain"
)

// mockScanService is a mock implementation of driving.ScanService.
type mockScanService struct {
	result *domain.ScanResult
	err    error

	gotPath     string
	gotKeywords domain.KeywordSet
}

func (m *mockScanService) Scan(
	_ context.Context,
	path string,
	keywords domain.KeywordSet,
) (*domain.ScanResult, error) {
	m.gotPath = path
	m.gotKeywords = keywords
	return m.result, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}
