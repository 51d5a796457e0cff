// Package styles provides the colour theme and lipgloss styles used for
// the prompt and the scan report.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

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
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	// Title style for headers.
	Title lipgloss.Style

	// Prompt style for the path question.
	Prompt lipgloss.Style

	// Keyword style for found keywords.
	Keyword lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Warning style for files keyscan cannot read.
	Warning lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme using the default renderer.
func NewStyles(theme *Theme) *Styles {
	return NewStylesWithRenderer(lipgloss.DefaultRenderer(), theme)
}

// NewStylesWithRenderer creates styles bound to r, so colour support is
// detected on the writer r was created for.
func NewStylesWithRenderer(r *lipgloss.Renderer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return &Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Prompt: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Keyword: r.NewStyle().
			Foreground(theme.Success),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Error: r.NewStyle().
			Foreground(theme.Error),

		Warning: r.NewStyle().
			Foreground(theme.Warning),

		Help: r.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}
