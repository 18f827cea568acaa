package scoring

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/danielmtz/paleta/internal/models"
)

// TestScore_BlackOnWhite ensures the extreme pair hits the maximum contrast
// ratio (21:1) and a score of 100.
func TestScore_BlackOnWhite(t *testing.T) {
	got, err := NewContrastScorer().Score("#ffffff", "#000000")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(got.Contrast-21) > 0.01 {
		t.Errorf("Contrast = %.3f, want 21", got.Contrast)
	}
	if math.Abs(got.Value-100) > 0.1 {
		t.Errorf("Value = %.3f, want 100", got.Value)
	}
}

// TestScore_SameColor ensures identical colors score zero.
func TestScore_SameColor(t *testing.T) {
	got, err := NewContrastScorer().Score("#2563eb", "#2563eb")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(got.Contrast-1) > 0.01 {
		t.Errorf("Contrast = %.3f, want 1", got.Contrast)
	}
	if got.Value != 0 {
		t.Errorf("Value = %.3f, want 0", got.Value)
	}
}

// TestScore_InvalidHex ensures malformed input surfaces ErrInvalidHex so the
// caller can report SCORE_CALCULATION_FAILED.
func TestScore_InvalidHex(t *testing.T) {
	if _, err := NewContrastScorer().Score("not-a-color", "#000000"); !errors.Is(err, models.ErrInvalidHex) {
		t.Errorf("Score with bad brand = %v, want ErrInvalidHex", err)
	}
	if _, err := NewContrastScorer().Score("#ffffff", "#12"); !errors.Is(err, models.ErrInvalidHex) {
		t.Errorf("Score with bad candidate = %v, want ErrInvalidHex", err)
	}
}

// TestScore_BreakdownIsMarkdown ensures the breakdown carries the table the
// UI renders while ShowScoreBreakdown is true.
func TestScore_BreakdownIsMarkdown(t *testing.T) {
	got, err := NewContrastScorer().Score("#ffffff", "#111111")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for _, part := range []string{"## Score breakdown", "contrast ratio", "| score |"} {
		if !strings.Contains(got.Breakdown, part) {
			t.Errorf("Breakdown missing %q\n%s", part, got.Breakdown)
		}
	}
}

// TestBest_PicksHighestContrast ensures Best returns the candidate with the
// top score.
func TestBest_PicksHighestContrast(t *testing.T) {
	candidates := []models.Token{
		{Name: "near-white", Hex: "#fafafa", Role: models.RoleAccent},
		{Name: "near-brand", Hex: "#f0f0f0", Role: models.RoleAccent},
		{Name: "black", Hex: "#000000", Role: models.RoleAccent},
	}

	token, score, err := Best(NewContrastScorer(), "#ffffff", candidates)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if token.Name != "black" {
		t.Errorf("Best token = %q, want %q", token.Name, "black")
	}
	if score.Value <= 0 {
		t.Errorf("Best score = %.3f, want > 0", score.Value)
	}
}

// TestBest_PropagatesScoringFailure ensures one bad candidate fails the
// whole run; a partial ranking would be misleading.
func TestBest_PropagatesScoringFailure(t *testing.T) {
	candidates := []models.Token{
		{Name: "good", Hex: "#000000", Role: models.RoleAccent},
		{Name: "bad", Hex: "oops", Role: models.RoleAccent},
	}

	if _, _, err := Best(NewContrastScorer(), "#ffffff", candidates); !errors.Is(err, models.ErrInvalidHex) {
		t.Errorf("Best error = %v, want ErrInvalidHex", err)
	}
}
