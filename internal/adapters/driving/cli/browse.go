package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// defaultBrowseCount is the listing size when browse gets no argument.
const defaultBrowseCount = 30

var browseLanguage string

var browseCmd = &cobra.Command{
	Use:   "browse [N]",
	Short: "Browse recently created repositories interactively",
	Long: `Launch the interactive terminal browser for the N most recently created
repositories (default 30).

Controls:
  ↑/k, ↓/j - Navigate
  g, G     - Newest / oldest
  Enter    - Toggle details
  +        - List twice as many
  r        - Refresh
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseLanguage, "lang", "l", "", "only repositories in this language")
	rootCmd.AddCommand(browseCmd)
}

// browseOptions parses the browse arguments into listing options.
func browseOptions(args []string) (domain.ListOptions, error) {
	count := defaultBrowseCount
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 || n > tui.MaxCount {
			return domain.ListOptions{}, fmt.Errorf("%w: N must be between 1 and %d, got %q",
				domain.ErrInvalidInput, tui.MaxCount, args[0])
		}
		count = n
	}
	return domain.ListOptions{Count: count, Language: browseLanguage}, nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if listService == nil {
		return errors.New("list service not configured")
	}

	opts, err := browseOptions(args)
	if err != nil {
		return err
	}

	loc := time.Local
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			if l, err := settings.Output.Location(); err == nil {
				loc = l
			}
		}
	}

	app, err := tui.NewApp(&tui.Ports{List: listService, RateLimit: rateLimitService}, opts, loc)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
