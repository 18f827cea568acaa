package accent

import "fmt"

// ErrorState is an immutable snapshot of the selection restrictions derived
// from the currently active error. The zero value is NOT the cleared state;
// use Cleared.
type ErrorState struct {
	// AutoSelectionDisabled blocks automatic (scored) selection
	AutoSelectionDisabled bool

	// ManualSelectionDisabled blocks manual picking as well
	ManualSelectionDisabled bool

	// Code is the active error, CodeNone when healthy
	Code ErrorCode

	// Message is the human-readable message paired with Code
	Message string

	// ShowScoreBreakdown allows the supplementary scoring detail to render.
	// Only true in the fully healthy state.
	ShowScoreBreakdown bool
}

// Cleared returns the canonical healthy state: both selection modes enabled,
// no code or message, score breakdown visible.
func Cleared() ErrorState {
	return ErrorState{ShowScoreBreakdown: true}
}

// restrictions returns the flag row for a recognized code.
// This is the single transition table; both the reducer API and the State
// holder derive from it.
func restrictions(code ErrorCode) (autoDisabled, manualDisabled, ok bool) {
	switch code {
	case CodeBrandColorNotSet, CodeDADSLoadFailed:
		// Upstream data unavailable: neither mode can proceed
		return true, true, true
	case CodeScoreCalculationFailed:
		// Computation failure: manual picking still works
		return true, false, true
	}
	return false, false, false
}

// Apply computes the snapshot for a newly reported error. The result is a
// pure function of code and message alone; prior state never matters, so
// reporting the same code twice or overwriting one code with another always
// yields exactly the policy for the latest code.
//
// An unrecognized code is a contract violation at the call site and returns
// an error instead of silently producing the cleared state.
func Apply(code ErrorCode, message string) (ErrorState, error) {
	autoDisabled, manualDisabled, ok := restrictions(code)
	if !ok {
		return ErrorState{}, fmt.Errorf("accent: unrecognized error code %q", code)
	}
	return ErrorState{
		AutoSelectionDisabled:   autoDisabled,
		ManualSelectionDisabled: manualDisabled,
		Code:                    code,
		Message:                 message,
		ShowScoreBreakdown:      false,
	}, nil
}
