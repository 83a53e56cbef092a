package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driven"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// TokenEnv overrides the configured token when set.
//
//nolint:gosec // G101: This is an environment variable name, not a credential.
const TokenEnv = "GITHUB_TOKEN"

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyBaseURL        = "github.base_url"
	keyToken          = "github.token"
	keyTimeout        = "github.timeout_seconds"
	keyRequestsPerSec = "github.requests_per_second"
	keyInitialSpan    = "search.initial_span_minutes"
	keyEmptyGrowth    = "search.empty_growth"
	keyGrowth         = "search.growth"
	keyMaxIterations  = "search.max_iterations"
	keyTimezone       = "output.timezone"
)

// settingKeys lists every key Set accepts, in display order.
var settingKeys = []string{
	keyBaseURL,
	keyToken,
	keyTimeout,
	keyRequestsPerSec,
	keyInitialSpan,
	keyEmptyGrowth,
	keyGrowth,
	keyMaxIterations,
	keyTimezone,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing keys fall back to defaults; GITHUB_TOKEN wins over the stored token.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		GitHub: domain.GitHubSettings{
			BaseURL:           s.getString(keyBaseURL, defaults.GitHub.BaseURL),
			Token:             s.configStore.GetString(keyToken),
			Timeout:           time.Duration(s.getInt(keyTimeout, int(defaults.GitHub.Timeout/time.Second))) * time.Second,
			RequestsPerSecond: s.getFloat(keyRequestsPerSec, defaults.GitHub.RequestsPerSecond),
		},
		Search: domain.SearchSettings{
			InitialSpanMinutes: s.getInt(keyInitialSpan, defaults.Search.InitialSpanMinutes),
			EmptyGrowth:        s.getInt(keyEmptyGrowth, defaults.Search.EmptyGrowth),
			Growth:             s.getInt(keyGrowth, defaults.Search.Growth),
			MaxIterations:      s.getInt(keyMaxIterations, defaults.Search.MaxIterations),
		},
		Output: domain.OutputSettings{
			Timezone: s.getString(keyTimezone, defaults.Output.Timezone),
		},
	}

	if token := os.Getenv(TokenEnv); token != "" {
		settings.GitHub.Token = token
	}

	return settings, nil
}

// Save persists application settings.
// An empty token is not written, so the stored one is kept.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyBaseURL, settings.GitHub.BaseURL},
		{keyTimeout, int(settings.GitHub.Timeout / time.Second)},
		{keyRequestsPerSec, settings.GitHub.RequestsPerSecond},
		{keyInitialSpan, settings.Search.InitialSpanMinutes},
		{keyEmptyGrowth, settings.Search.EmptyGrowth},
		{keyGrowth, settings.Search.Growth},
		{keyMaxIterations, settings.Search.MaxIterations},
		{keyTimezone, settings.Output.Timezone},
	}
	if settings.GitHub.Token != "" {
		values = append(values, struct {
			key   string
			value any
		}{keyToken, settings.GitHub.Token})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the resulting settings and stores it.
// An empty value for github.token removes the stored token.
func (s *SettingsService) Set(key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if key == keyToken && value == "" {
		if err := s.configStore.Delete(keyToken); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	typed, err := applySetting(settings, key, value)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the settable keys.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// applySetting parses value for key, assigns it to settings and returns the
// typed value to store.
func applySetting(settings *domain.AppSettings, key, value string) (any, error) {
	switch key {
	case keyBaseURL:
		settings.GitHub.BaseURL = value
		return value, nil
	case keyToken:
		settings.GitHub.Token = value
		return value, nil
	case keyTimezone:
		settings.Output.Timezone = value
		return value, nil
	case keyRequestsPerSec:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number: %q", domain.ErrInvalidInput, key, value)
		}
		settings.GitHub.RequestsPerSecond = f
		return f, nil
	case keyTimeout, keyInitialSpan, keyEmptyGrowth, keyGrowth, keyMaxIterations:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer: %q", domain.ErrInvalidInput, key, value)
		}
		switch key {
		case keyTimeout:
			settings.GitHub.Timeout = time.Duration(n) * time.Second
		case keyInitialSpan:
			settings.Search.InitialSpanMinutes = n
		case keyEmptyGrowth:
			settings.Search.EmptyGrowth = n
		case keyGrowth:
			settings.Search.Growth = n
		case keyMaxIterations:
			settings.Search.MaxIterations = n
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q (valid: %s)",
			domain.ErrInvalidInput, key, strings.Join(settingKeys, ", "))
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}
