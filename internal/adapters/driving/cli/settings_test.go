package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Classic token",
			input:    "ghp_1234567890abcdef",
			expected: "ghp_...cdef",
		},
		{
			name:     "Fine-grained token",
			input:    "github_pat_11ABCDEFG0123456789_xyz",
			expected: "gith..._xyz",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReadPassword_FallsBackToLine(t *testing.T) {
	assert.Equal(t, "ghp_secret", readPassword(strings.NewReader("  ghp_secret \nignored\n")))
	assert.Equal(t, "", readPassword(strings.NewReader("")))
}

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
	assert.Equal(t, "set [key] [value]", settingsSetCmd.Use)
}

func TestSettingsShow(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.settings.GitHub.Token = "ghp_1234567890abcdef"

	stdout, _, err := runRoot(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[GitHub]")
	assert.Contains(t, stdout, "Base URL: https://api.github.com/")
	assert.Contains(t, stdout, "Token: ghp_...cdef")
	assert.NotContains(t, stdout, "ghp_1234567890abcdef")
	assert.Contains(t, stdout, "Initial span: 10 min")
	assert.Contains(t, stdout, "Empty growth: x6")
	assert.Contains(t, stdout, "Growth: x3")
	assert.Contains(t, stdout, "Timezone: Local")
	assert.Contains(t, stdout, "Configuration is valid.")
}

func TestSettingsShow_DefaultSubcommand(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := runRoot(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Current Settings")
	assert.Contains(t, stdout, "Token: (not set)")
}

func TestSettingsShow_InvalidWarns(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.validateErr = errors.New("invalid input: search growth factors must be at least 2")

	stdout, _, err := runRoot(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Warning: invalid input: search growth factors must be at least 2")
}

func TestSettingsSet(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := runRoot(t, "settings", "set", "search.growth", "4")

	require.NoError(t, err)
	assert.Equal(t, "4", ts.settings.set["search.growth"])
	assert.Contains(t, stdout, "Set search.growth to 4")
}

func TestSettingsSet_TokenIsMasked(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := runRoot(t, "settings", "set", "github.token", "ghp_1234567890abcdef")

	require.NoError(t, err)
	assert.Equal(t, "ghp_1234567890abcdef", ts.settings.set["github.token"])
	assert.NotContains(t, stdout, "ghp_1234567890abcdef")
	assert.Contains(t, stdout, "ghp_...cdef")
}

func TestSettingsSet_EmptyTokenRemoves(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := runRoot(t, "settings", "set", "github.token", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed github.token")
}

func TestSettingsSet_Error(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.setErr = errors.New("unknown setting")

	_, _, err := runRoot(t, "settings", "set", "nope", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set nope")
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	_, _, err := runRoot(t, "settings", "set", "search.growth")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsToken(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	rootCmd.SetIn(strings.NewReader("ghp_1234567890abcdef\n"))
	defer rootCmd.SetIn(nil)

	stdout, _, err := runRoot(t, "settings", "token")

	require.NoError(t, err)
	assert.Equal(t, "ghp_1234567890abcdef", ts.settings.set["github.token"])
	assert.Contains(t, stdout, "Saved token ghp_...cdef to /tmp/github-browser/config.toml")
}

func TestSettingsToken_Empty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	rootCmd.SetIn(strings.NewReader("\n"))
	defer rootCmd.SetIn(nil)

	_, _, err := runRoot(t, "settings", "token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is empty")
	assert.Empty(t, ts.settings.set)
}

func TestSettingsPath(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := runRoot(t, "settings", "path")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/github-browser/config.toml\n", stdout)
}

func TestSettings_NoService(t *testing.T) {
	prev := settingsService
	settingsService = nil
	defer func() { settingsService = prev }()

	for _, args := range [][]string{{"settings", "show"}, {"settings", "path"}, {"settings", "set", "a", "b"}} {
		_, _, err := runRoot(t, args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}
