// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/danielmtz/paleta/internal/config"
	"github.com/danielmtz/paleta/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the appearance of the app header
	TitleStyle lipgloss.Style

	// SwatchStyle defines the appearance of a token swatch card
	SwatchStyle lipgloss.Style

	// SelectedSwatchStyle marks the selected swatch
	SelectedSwatchStyle lipgloss.Style

	// PanelStyle frames the score breakdown panel
	PanelStyle lipgloss.Style

	// DisabledStyle grays out unavailable controls
	DisabledStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages (red)
	ErrorBannerStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SwatchStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SwatchBorder)).
		Padding(0, 1).
		Width(16)

	SelectedSwatchStyle = SwatchStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PanelBorder)).
		Padding(0, 1)

	DisabledStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg)).
		Padding(0, 1)
}
