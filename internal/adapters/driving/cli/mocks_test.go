package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// mockListService is a mock implementation of driving.ListService.
type mockListService struct {
	result *domain.ListResult
	err    error
	opts   []domain.ListOptions
}

func (m *mockListService) List(_ context.Context, opts domain.ListOptions) (*domain.ListResult, error) {
	m.opts = append(m.opts, opts)
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.ListResult{}, nil
	}
	return m.result, nil
}

// mockFormatter is a mock implementation of driving.Formatter.
type mockFormatter struct{}

func (mockFormatter) Format(items []domain.RepositoryItem, extended bool) string {
	lines := []string{fmt.Sprintf("Total entries found: %d", len(items))}
	for i, item := range items {
		if extended {
			lines = append(lines, fmt.Sprintf("#%d %s", i, item.FullName))
		} else {
			lines = append(lines, item.FullName)
		}
	}
	return strings.Join(lines, "\n")
}

// mockRateLimitService is a mock implementation of driving.RateLimitService.
type mockRateLimitService struct {
	status *domain.RateStatus
	err    error
}

func (m *mockRateLimitService) SearchRateLimit(_ context.Context) (*domain.RateStatus, error) {
	return m.status, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings    domain.AppSettings
	validateErr error
	setErr      error
	set         map[string]string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		set:      make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"github.base_url", "github.token"}
}

func (m *mockSettingsService) Validate() error {
	return m.validateErr
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return "/tmp/github-browser/config.toml"
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	list      *mockListService
	rateLimit *mockRateLimitService
	settings  *mockSettingsService
}

// setupTestServices installs mock services and returns them with a cleanup
// function that restores the previous services and resets command flags.
func setupTestServices() (*testServices, func()) {
	prevList, prevFormatter, prevRateLimit, prevSettings := listService, formatter, rateLimitService, settingsService

	ts := &testServices{
		list:      &mockListService{},
		rateLimit: &mockRateLimitService{},
		settings:  newMockSettingsService(),
	}
	SetServices(Services{
		List:      ts.list,
		Formatter: mockFormatter{},
		RateLimit: ts.rateLimit,
		Settings:  ts.settings,
	})

	return ts, func() {
		listService, formatter, rateLimitService, settingsService = prevList, prevFormatter, prevRateLimit, prevSettings
		resetFlags()
	}
}

// resetFlags restores flag variables that persist between executions.
func resetFlags() {
	listLanguage = ""
	listSort = string(domain.SortDefault)
	listExtended = false
	listJSON = false
	listUntil = ""
	rateLimitJSON = false
	browseLanguage = ""
	verbose = false
}
