// Package tui implements the interactive accent picker. The model wires the
// upstream collaborators (config, token source, scorer, selection store) to
// the accent error policy: every failure they report becomes a policy
// transition, never a crash.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/textinput"

	"github.com/danielmtz/paleta/internal/accent"
	"github.com/danielmtz/paleta/internal/config"
	"github.com/danielmtz/paleta/internal/database"
	"github.com/danielmtz/paleta/internal/models"
	"github.com/danielmtz/paleta/internal/scoring"
	"github.com/danielmtz/paleta/internal/tokens"
	"github.com/danielmtz/paleta/internal/tui/components"
	"github.com/danielmtz/paleta/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context
	cfg *config.Config

	// Collaborators
	source tokens.Source
	scorer scoring.Scorer
	repo   database.SelectionRepository

	// State holders, one each per UI session
	accentState *accent.State
	uiState     *state.UIState

	// Loaded dataset; empty while degraded
	tokens []models.Token

	// Current pick
	accentHex  string
	accentName string
	accentMode string
	score      scoring.Score

	// Manual hex entry
	manualInput textinput.Model

	// Transient one-line status message
	notice string
}

// InitialModel creates the TUI model and runs the initial health evaluation:
// a missing brand color or a dataset failure degrades the picker before the
// first keypress.
func InitialModel(
	ctx context.Context,
	cfg *config.Config,
	source tokens.Source,
	scorer scoring.Scorer,
	repo database.SelectionRepository,
) Model {
	components.InitStyles(cfg.ColorScheme)

	input := textinput.New()
	input.Placeholder = "#rrggbb"

	m := Model{
		ctx:         ctx,
		cfg:         cfg,
		source:      source,
		scorer:      scorer,
		repo:        repo,
		accentState: accent.NewState(),
		uiState:     state.NewUIState(),
		manualInput: input,
	}

	m.evaluateHealth()
	m.restoreSelection()
	return m
}

// evaluateHealth re-derives the error state from the collaborators: brand
// color first, then the dataset. A healthy pass clears any previous error.
func (m *Model) evaluateHealth() {
	if m.cfg.BrandColor == "" {
		m.reportError(accent.CodeBrandColorNotSet,
			"no brand color configured; set brand_color in the config to enable accent selection")
		m.tokens = nil
		return
	}

	loaded, err := m.source.Load()
	if err != nil {
		slog.Error("token dataset load failed", "error", err)
		m.reportError(accent.CodeDADSLoadFailed,
			fmt.Sprintf("design tokens unavailable: %v", err))
		m.tokens = nil
		return
	}

	m.tokens = loaded
	m.uiState.ClampSelection(len(m.tokens))
	m.accentState.Clear()
}

// reportError routes a failure through the policy. A rejected transition is
// a programming error; it is logged and the previous restrictions stay.
func (m *Model) reportError(code accent.ErrorCode, message string) {
	if _, err := m.accentState.SetError(code, message); err != nil {
		slog.Error("error state transition rejected", "code", code, "error", err)
	}
}

// restoreSelection loads the most recent saved selection for the brand, if
// any. Best effort: storage failures only log.
func (m *Model) restoreSelection() {
	if m.cfg.BrandColor == "" {
		return
	}
	latest, err := m.repo.GetLatestSelection(m.ctx, m.cfg.BrandColor)
	if err != nil {
		slog.Error("failed to restore selection", "error", err)
		return
	}
	if latest == nil {
		return
	}
	m.accentHex = latest.AccentHex
	m.accentName = latest.TokenName
	m.accentMode = latest.Mode
}

// AccentState exposes the error-state holder, primarily for tests.
func (m *Model) AccentState() *accent.State {
	return m.accentState
}

// Accent returns the current pick (hex, token name, mode).
func (m *Model) Accent() (string, string, string) {
	return m.accentHex, m.accentName, m.accentMode
}
