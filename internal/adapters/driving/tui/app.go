package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/components/list"
	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/keymap"
	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/messages"
	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/styles"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// MaxCount is the largest listing More will request.
const MaxCount = 1000

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	styles  *styles.Styles
	keys    *keymap.KeyMap
	list    *list.RepoList
	spinner spinner.Model
	help    help.Model

	// opts are the options of the current (or pending) listing.
	opts domain.ListOptions

	result  *domain.ListResult
	quota   *domain.RateStatus
	err     error
	loading bool

	// showDetails toggles the detail pane.
	showDetails bool

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a TUI that lists opts.Count repositories on start.
// A nil location shows dates in UTC.
func NewApp(ports *Ports, opts domain.ListOptions, loc *time.Location) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.NewStyles(nil)
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		list:    list.NewRepoList(s, loc),
		spinner: sp,
		help:    help.New(),
		opts:    opts,
		loading: true,
		width:   80,
		height:  24,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It starts the first listing.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("github-browser"),
		a.spinner.Tick,
		a.listCmd(a.opts),
		a.rateLimitCmd(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.list.SetDimensions(msg.Width, a.listHeight())
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case messages.ListCompleted:
		a.loading = false
		a.err = msg.Err
		if msg.Err == nil {
			a.opts = msg.Options
			a.result = msg.Result
			a.list.SetRepos(msg.Result.Items)
		}
		return a, a.rateLimitCmd()

	case messages.RateLimitLoaded:
		if msg.Err == nil {
			a.quota = msg.Status
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.list.SetDimensions(a.width, a.listHeight())
		return a, nil

	case key.Matches(msg, a.keys.Details):
		a.showDetails = !a.showDetails
		a.list.SetDimensions(a.width, a.listHeight())
		return a, nil

	case key.Matches(msg, a.keys.Back):
		a.showDetails = false
		a.list.SetDimensions(a.width, a.listHeight())
		return a, nil
	}

	if a.loading {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Refresh):
		return a, a.startList(a.opts)

	case key.Matches(msg, a.keys.More):
		if a.opts.Count >= MaxCount {
			return a, nil
		}
		opts := a.opts
		opts.Count = min(opts.Count*2, MaxCount)
		return a, a.startList(opts)
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// startList marks the app as loading and runs a listing.
func (a *App) startList(opts domain.ListOptions) tea.Cmd {
	a.loading = true
	a.err = nil
	return tea.Batch(a.spinner.Tick, a.listCmd(opts))
}

func (a *App) listCmd(opts domain.ListOptions) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ports.List.List(a.ctx, opts)
		return messages.ListCompleted{Options: opts, Result: result, Err: err}
	}
}

func (a *App) rateLimitCmd() tea.Cmd {
	if a.ports.RateLimit == nil {
		return nil
	}
	return func() tea.Msg {
		status, err := a.ports.RateLimit.SearchRateLimit(a.ctx)
		return messages.RateLimitLoaded{Status: status, Err: err}
	}
}

// listHeight is the height left for the list after the title, status,
// help and detail pane.
func (a *App) listHeight() int {
	reserved := 4
	if a.help.ShowAll {
		reserved += 4
	}
	if a.showDetails {
		reserved += 8
	}
	return max(a.height-reserved, 3)
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title(a.title()))
	b.WriteString("\n\n")

	switch {
	case a.loading:
		b.WriteString(a.spinner.View() + " Searching for recently created repositories...")
	case a.err != nil:
		b.WriteString(a.styles.Error("Error: " + a.err.Error()))
		b.WriteString("\n")
		b.WriteString(a.styles.Muted("Press r to retry."))
	default:
		b.WriteString(a.list.View())
		if a.showDetails {
			b.WriteString("\n\n")
			b.WriteString(a.list.Details())
		}
	}

	b.WriteString("\n\n")
	if status := a.status(); status != "" {
		b.WriteString(a.styles.Muted(status))
		b.WriteString("\n")
	}
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

func (a *App) title() string {
	title := fmt.Sprintf("%d most recently created repositories", a.opts.Count)
	if a.opts.Language != "" {
		title += " in " + a.opts.Language
	}
	return title
}

func (a *App) status() string {
	var parts []string
	if a.result != nil && !a.loading {
		parts = append(parts, fmt.Sprintf("%d requests, %d windows", a.result.Requests, len(a.result.Windows)))
		if a.result.Degraded {
			parts = append(parts, fmt.Sprintf("only %d found", len(a.result.Items)))
		}
	}
	if a.quota != nil {
		parts = append(parts, fmt.Sprintf("quota %d/%d", a.quota.Remaining, a.quota.Limit))
	}
	return strings.Join(parts, " · ")
}

// Options returns the options of the current listing.
func (a *App) Options() domain.ListOptions {
	return a.opts
}

// Loading reports whether a listing is in flight.
func (a *App) Loading() bool {
	return a.loading
}

// Err returns the error of the last listing.
func (a *App) Err() error {
	return a.err
}

// List returns the repository list component.
func (a *App) List() *list.RepoList {
	return a.list
}
