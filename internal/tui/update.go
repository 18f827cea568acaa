package tui

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/danielmtz/paleta/internal/accent"
	"github.com/danielmtz/paleta/internal/export"
	"github.com/danielmtz/paleta/internal/models"
	"github.com/danielmtz/paleta/internal/scoring"
	"github.com/danielmtz/paleta/internal/tui/state"
)

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.uiState.Mode() {
		case state.ManualInputMode:
			return m.handleManualInput(msg)
		default:
			return m.handleNormalMode(msg)
		}

	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
	}

	return m, nil
}

// handleNormalMode dispatches key events in NormalMode.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	key := msg.String()
	km := m.cfg.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.PrevSwatch, "left":
		m.uiState.SelectPrevSwatch()
	case km.NextSwatch, "right":
		m.uiState.SelectNextSwatch(len(m.tokens))
	case km.AutoSelect:
		return m.handleAutoSelect()
	case km.ManualSelect:
		return m.handleEnterManual()
	case km.SaveAccent:
		return m.handleSave()
	case km.ToggleBreakdown:
		m.uiState.ToggleBreakdown()
	case km.ExportPreview:
		return m.handleExport()
	case "r":
		// Re-run the health evaluation after the user fixed the upstream
		// condition (configured a brand color, restored the dataset)
		m.evaluateHealth()
	}

	return m, nil
}

// handleAutoSelect runs the scorer over the dataset and picks the best
// token. Scoring failures degrade the picker instead of crashing it.
func (m Model) handleAutoSelect() (tea.Model, tea.Cmd) {
	if m.accentState.IsAutoSelectionDisabled() {
		m.notice = m.accentState.Snapshot().Message
		return m, nil
	}

	token, score, err := scoring.Best(m.scorer, m.cfg.BrandColor, m.tokens)
	if err != nil {
		slog.Error("automatic selection failed", "error", err)
		m.reportError(accent.CodeScoreCalculationFailed,
			fmt.Sprintf("score calculation failed: %v", err))
		return m, nil
	}

	m.accentHex = token.Hex
	m.accentName = token.Name
	m.accentMode = models.SelectionModeAuto
	m.score = score
	m.accentState.Clear()
	return m, nil
}

// handleEnterManual switches into manual hex entry, unless the policy has
// blocked manual selection too.
func (m Model) handleEnterManual() (tea.Model, tea.Cmd) {
	if m.accentState.IsManualSelectionDisabled() {
		m.notice = m.accentState.Snapshot().Message
		return m, nil
	}

	m.uiState.SetMode(state.ManualInputMode)
	m.manualInput.SetValue("")
	return m, m.manualInput.Focus()
}

// handleManualInput processes keys while typing a hex code.
func (m Model) handleManualInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.uiState.SetMode(state.NormalMode)
		m.manualInput.Blur()
		return m, nil
	case "enter":
		return m.commitManual()
	}

	var cmd tea.Cmd
	m.manualInput, cmd = m.manualInput.Update(msg)
	return m, cmd
}

// commitManual validates and applies the typed hex code. A scoring failure
// still accepts the pick; only the breakdown is lost, per the policy.
func (m Model) commitManual() (tea.Model, tea.Cmd) {
	hex := m.manualInput.Value()
	if err := scoring.ValidateHex(hex); err != nil {
		m.notice = fmt.Sprintf("invalid hex code %q", hex)
		return m, nil
	}

	m.uiState.SetMode(state.NormalMode)
	m.manualInput.Blur()

	m.accentHex = hex
	m.accentName = ""
	m.accentMode = models.SelectionModeManual

	score, err := m.scorer.Score(m.cfg.BrandColor, hex)
	if err != nil {
		slog.Error("scoring manual pick failed", "error", err)
		m.reportError(accent.CodeScoreCalculationFailed,
			fmt.Sprintf("score calculation failed: %v", err))
		m.score = scoring.Score{}
		return m, nil
	}

	m.score = score
	m.accentState.Clear()
	return m, nil
}

// handleSave persists the current pick for the brand color.
func (m Model) handleSave() (tea.Model, tea.Cmd) {
	if m.accentHex == "" {
		m.notice = "nothing to save yet"
		return m, nil
	}

	saved, err := m.repo.CreateSelection(m.ctx, &models.Selection{
		BrandHex:  m.cfg.BrandColor,
		AccentHex: m.accentHex,
		TokenName: m.accentName,
		Mode:      m.accentMode,
	})
	if err != nil {
		slog.Error("failed to save selection", "error", err)
		m.notice = "save failed, see log"
		return m, nil
	}

	m.notice = fmt.Sprintf("saved %s as accent for %s", saved.AccentHex, saved.BrandHex)
	return m, nil
}

// handleExport writes the HTML preview next to the current directory.
func (m Model) handleExport() (tea.Model, tea.Cmd) {
	const path = "paleta-preview.html"

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create preview file", "error", err)
		m.notice = "export failed, see log"
		return m, nil
	}
	defer file.Close()

	if err := export.WriteHTML(file, m.cfg.BrandColor, m.tokens); err != nil {
		slog.Error("failed to write preview", "error", err)
		m.notice = "export failed, see log"
		return m, nil
	}

	m.notice = "wrote " + path
	return m, nil
}
