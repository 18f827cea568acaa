package accent

// State holds the current error snapshot for one UI session. It is created
// at UI initialization and passed by reference to the rendering layer; there
// is deliberately no package-level shared instance. All reads and writes
// happen on the UI goroutine, so no locking is needed, but every mutation
// returns the authoritative new snapshot and callers should use that return
// value rather than re-reading later.
type State struct {
	current ErrorState
}

// NewState creates a State in the canonical cleared state.
func NewState() *State {
	return &State{current: Cleared()}
}

// Snapshot returns the current error state.
func (s *State) Snapshot() ErrorState {
	return s.current
}

// SetError records a newly reported error and returns the resulting
// snapshot. On an unrecognized code the held state is left untouched and the
// previous snapshot is returned alongside the error.
//
// Parameters:
//   - code: the reported error code
//   - message: the human-readable message to surface with it
func (s *State) SetError(code ErrorCode, message string) (ErrorState, error) {
	next, err := Apply(code, message)
	if err != nil {
		return s.current, err
	}
	s.current = next
	return s.current, nil
}

// Clear resets to the canonical cleared state, discarding any active error,
// and returns the new snapshot.
func (s *State) Clear() ErrorState {
	s.current = Cleared()
	return s.current
}

// IsAutoSelectionDisabled reports whether automatic (scored) selection is
// currently blocked.
func (s *State) IsAutoSelectionDisabled() bool {
	return s.current.AutoSelectionDisabled
}

// IsManualSelectionDisabled reports whether manual picking is currently
// blocked.
func (s *State) IsManualSelectionDisabled() bool {
	return s.current.ManualSelectionDisabled
}

// CanShowScoreBreakdown reports whether the supplementary scoring detail may
// be rendered.
func (s *State) CanShowScoreBreakdown() bool {
	return s.current.ShowScoreBreakdown
}
