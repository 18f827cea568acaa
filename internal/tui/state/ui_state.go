package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode      Mode = iota // Default navigation mode
	ManualInputMode             // Typing a hex code for manual selection
)

// UIState manages the user interface state: swatch selection, terminal
// dimensions, the interaction mode, and whether the score breakdown panel is
// expanded.
type UIState struct {
	// selectedSwatch is the index of the currently selected token swatch
	selectedSwatch int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// breakdownOpen tracks whether the user expanded the score breakdown.
	// Whether it may render at all is the error policy's call, not ours.
	breakdownOpen bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{}
}

// SelectedSwatch returns the index of the currently selected swatch.
func (s *UIState) SelectedSwatch() int {
	return s.selectedSwatch
}

// SelectPrevSwatch moves the selection left, stopping at the first swatch.
func (s *UIState) SelectPrevSwatch() {
	if s.selectedSwatch > 0 {
		s.selectedSwatch--
	}
}

// SelectNextSwatch moves the selection right, stopping at the last swatch.
//
// Parameters:
//   - swatchCount: total number of swatches
func (s *UIState) SelectNextSwatch(swatchCount int) {
	if s.selectedSwatch < swatchCount-1 {
		s.selectedSwatch++
	}
}

// ClampSelection pulls the selection back into range after the swatch list
// changes (e.g. a dataset reload).
func (s *UIState) ClampSelection(swatchCount int) {
	if swatchCount == 0 {
		s.selectedSwatch = 0
		return
	}
	if s.selectedSwatch >= swatchCount {
		s.selectedSwatch = swatchCount - 1
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// BreakdownOpen reports whether the user expanded the score breakdown panel.
func (s *UIState) BreakdownOpen() bool {
	return s.breakdownOpen
}

// ToggleBreakdown flips the breakdown panel.
func (s *UIState) ToggleBreakdown() {
	s.breakdownOpen = !s.breakdownOpen
}
