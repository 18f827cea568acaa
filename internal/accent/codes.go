// Package accent implements the accent-selection error policy: it maps
// failures reported by upstream collaborators (brand color configuration,
// token dataset loading, score calculation) to a consistent restriction on
// which selection modes remain available.
package accent

// ErrorCode identifies a failure condition reported by upstream feature
// logic. Codes are string-based for debuggability and log readability.
type ErrorCode string

const (
	// CodeNone is the zero value and means no error is active.
	CodeNone ErrorCode = ""

	// CodeBrandColorNotSet indicates no brand color has been configured.
	// Without a baseline there is nothing to select against.
	CodeBrandColorNotSet ErrorCode = "BRAND_COLOR_NOT_SET"

	// CodeDADSLoadFailed indicates the design-token dataset could not be
	// loaded.
	CodeDADSLoadFailed ErrorCode = "DADS_LOAD_FAILED"

	// CodeScoreCalculationFailed indicates the scoring engine failed.
	// Manual selection is still meaningful in this state.
	CodeScoreCalculationFailed ErrorCode = "SCORE_CALCULATION_FAILED"
)

// Valid reports whether c is one of the three defined error codes.
// CodeNone is not a reportable error and is excluded on purpose.
func (c ErrorCode) Valid() bool {
	switch c {
	case CodeBrandColorNotSet, CodeDADSLoadFailed, CodeScoreCalculationFailed:
		return true
	}
	return false
}
