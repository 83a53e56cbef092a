package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/styles"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the API client and the window search.

Settings are stored in a TOML file; "settings path" prints its location.
The GITHUB_TOKEN environment variable overrides the stored token.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by its config key.

Available keys:
  github.base_url             REST API root (GitHub Enterprise: https://host/api/v3/)
  github.token                access token (empty value removes it)
  github.timeout_seconds      per-request timeout
  github.requests_per_second  request throttle
  search.initial_span_minutes width of the first window
  search.empty_growth         span multiplier while nothing is found
  search.growth               span multiplier once repositories are found
  search.max_iterations       most requests per run
  output.timezone             zone for extended dates (IANA name, Local, UTC)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Store an access token",
	Long:  `Prompt for a GitHub access token without echoing it and store it.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsToken,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsTokenCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	st := styles.ForWriter(cmd.OutOrStdout())

	cmd.Println(st.Title("Current Settings"))
	cmd.Println("================")
	cmd.Println()

	cmd.Println(st.Label("[GitHub]"))
	cmd.Printf("  Base URL: %s\n", settings.GitHub.BaseURL)
	if settings.GitHub.HasToken() {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.GitHub.Token))
	} else {
		cmd.Println("  Token: (not set)")
	}
	cmd.Printf("  Timeout: %s\n", settings.GitHub.Timeout)
	cmd.Printf("  Requests per second: %g\n", settings.GitHub.RequestsPerSecond)
	cmd.Println()

	cmd.Println(st.Label("[Search]"))
	cmd.Printf("  Initial span: %d min\n", settings.Search.InitialSpanMinutes)
	cmd.Printf("  Empty growth: x%d\n", settings.Search.EmptyGrowth)
	cmd.Printf("  Growth: x%d\n", settings.Search.Growth)
	cmd.Printf("  Max iterations: %d\n", settings.Search.MaxIterations)
	cmd.Println()

	cmd.Println(st.Label("[Output]"))
	cmd.Printf("  Timezone: %s\n", settings.Output.Timezone)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Println(st.Warning(fmt.Sprintf("Warning: %v", err)))
		cmd.Println("Run 'github-browser settings set' to fix configuration issues.")
	} else {
		cmd.Println(st.Success("Configuration is valid."))
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if key == "github.token" {
		if value == "" {
			cmd.Println("Removed github.token")
		} else {
			cmd.Printf("Set github.token to %s\n", maskAPIKey(value))
		}
		return nil
	}
	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func runSettingsToken(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("GitHub token (input hidden): ")
	token := readPassword(cmd.InOrStdin())
	cmd.Println()

	if token == "" {
		return fmt.Errorf("%w: token is empty", domain.ErrInvalidInput)
	}
	if err := settingsService.Set("github.token", token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	cmd.Printf("Saved token %s to %s\n", maskAPIKey(token), settingsService.Path())
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Println(settingsService.Path())
	return nil
}

func readPassword(in io.Reader) string {
	// Try to read password without echo
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
