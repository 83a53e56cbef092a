// Package styles provides colour themes for command output and the TUI.
//
// Command output is only styled when it goes to a terminal, so piped output
// and tests see plain text.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines the colour palette used by the commands.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Error:     lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles renders text with a theme. A plain Styles returns text unchanged.
type Styles struct {
	theme   *Theme
	enabled bool

	title    lipgloss.Style
	subtitle lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	err      lipgloss.Style
}

// NewStyles creates enabled styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme:   theme,
		enabled: true,

		title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		label:    lipgloss.NewStyle().Foreground(theme.Secondary),
		muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		success:  lipgloss.NewStyle().Foreground(theme.Success),
		warning:  lipgloss.NewStyle().Foreground(theme.Warning),
		err:      lipgloss.NewStyle().Bold(true).Foreground(theme.Error),
	}
}

// Plain returns styles that leave text unchanged.
func Plain() *Styles {
	s := NewStyles(nil)
	s.enabled = false
	return s
}

// ForWriter returns enabled styles when w is a terminal and plain ones otherwise.
func ForWriter(w io.Writer) *Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewStyles(nil)
	}
	return Plain()
}

// Theme returns the current theme.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Enabled reports whether text is styled.
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Title renders a heading.
func (s *Styles) Title(text string) string { return s.render(s.title, text) }

// Subtitle renders a secondary heading.
func (s *Styles) Subtitle(text string) string { return s.render(s.subtitle, text) }

// Selected renders the highlighted list entry.
func (s *Styles) Selected(text string) string { return s.render(s.selected, text) }

// Label renders a field name.
func (s *Styles) Label(text string) string { return s.render(s.label, text) }

// Muted renders secondary text.
func (s *Styles) Muted(text string) string { return s.render(s.muted, text) }

// Success renders a positive outcome.
func (s *Styles) Success(text string) string { return s.render(s.success, text) }

// Warning renders a caution.
func (s *Styles) Warning(text string) string { return s.render(s.warning, text) }

// Error renders a failure.
func (s *Styles) Error(text string) string { return s.render(s.err, text) }

func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
