package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/danielmtz/paleta/internal/accent"
	"github.com/danielmtz/paleta/internal/tui/components"
	"github.com/danielmtz/paleta/internal/tui/layers"
	"github.com/danielmtz/paleta/internal/tui/state"
	"github.com/danielmtz/paleta/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.viewMain()

	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if banner := layers.CreateTopLayer(components.RenderErrorBanner(m.accentState.Snapshot())); banner != nil {
		stack = append(stack, banner)
	}
	if m.uiState.Mode() == state.ManualInputMode {
		modal := components.PanelStyle.Render("enter accent hex\n\n" + m.manualInput.View())
		if layer := layers.CreateCenteredLayer(modal, m.uiState.Width(), m.uiState.Height()); layer != nil {
			stack = append(stack, layer)
		}
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// viewMain renders the full-screen picker content.
func (m Model) viewMain() string {
	var sections []string

	sections = append(sections, components.TitleStyle.Render("paleta"))
	sections = append(sections, m.viewBrandLine())

	if len(m.tokens) > 0 {
		sections = append(sections, components.RenderSwatchRow(m.tokens, m.uiState.SelectedSwatch()))
	} else if m.accentState.Snapshot().Code == accent.CodeNone {
		sections = append(sections, "no tokens loaded")
	}

	sections = append(sections, m.viewAccentLine())

	// The policy decides whether the breakdown may render at all; the user
	// toggle only decides whether it is expanded
	if m.accentState.CanShowScoreBreakdown() && m.uiState.BreakdownOpen() && m.score.Breakdown != "" {
		sections = append(sections, components.RenderBreakdown(m.score.Breakdown, m.uiState.Width()-4))
	}

	if m.notice != "" {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(m.notice))
	}

	sections = append(sections,
		components.RenderStatusBar(m.cfg.KeyMappings, m.accentState, m.uiState.Width()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewBrandLine shows the configured brand color, or the gap the policy is
// complaining about.
func (m Model) viewBrandLine() string {
	if m.cfg.BrandColor == "" {
		return components.DisabledStyle.Render("brand: not set")
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(m.cfg.BrandColor)).
		Render("   ")
	return "brand: " + block + " " + m.cfg.BrandColor
}

// viewAccentLine shows the current pick and how it was made.
func (m Model) viewAccentLine() string {
	if m.accentHex == "" {
		return components.DisabledStyle.Render("accent: none picked")
	}

	block := lipgloss.NewStyle().
		Background(lipgloss.Color(m.accentHex)).
		Render("   ")

	label := fmt.Sprintf("accent: %s %s (%s", block, m.accentHex, m.accentMode)
	if m.accentName != "" {
		label += ", " + m.accentName
	}
	return label + ")"
}
