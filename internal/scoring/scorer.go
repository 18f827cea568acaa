// Package scoring ranks candidate accent colors against the brand color.
// The bundled scorer is a plain WCAG contrast heuristic; fancier engines
// plug in behind the Scorer interface. Scoring failures are reported to the
// error policy by the caller, never swallowed here.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/danielmtz/paleta/internal/models"
)

// Score is the result of ranking one candidate against the brand color.
type Score struct {
	// Value is the overall score, higher is better
	Value float64

	// Contrast is the WCAG contrast ratio between brand and candidate
	Contrast float64

	// Breakdown is a markdown explanation of how Value was computed,
	// rendered by the UI only while the score breakdown is visible
	Breakdown string
}

// Scorer ranks a candidate accent color against a brand color.
type Scorer interface {
	Score(brandHex, candidateHex string) (Score, error)
}

// ContrastScorer scores candidates by contrast ratio against the brand.
type ContrastScorer struct{}

// NewContrastScorer creates the default scorer.
func NewContrastScorer() *ContrastScorer {
	return &ContrastScorer{}
}

// Score computes the contrast ratio between brand and candidate and scales
// it to a 0-100 score (ratio 1:1 -> 0, ratio 21:1 -> 100).
func (s *ContrastScorer) Score(brandHex, candidateHex string) (Score, error) {
	brandLum, err := luminance(brandHex)
	if err != nil {
		return Score{}, fmt.Errorf("brand color: %w", err)
	}
	candLum, err := luminance(candidateHex)
	if err != nil {
		return Score{}, fmt.Errorf("candidate color: %w", err)
	}

	lighter := math.Max(brandLum, candLum)
	darker := math.Min(brandLum, candLum)
	ratio := (lighter + 0.05) / (darker + 0.05)

	value := (ratio - 1) / 20 * 100
	value = math.Min(math.Max(value, 0), 100)

	breakdown := fmt.Sprintf(
		"## Score breakdown\n\n"+
			"| factor | value |\n"+
			"|---|---|\n"+
			"| brand luminance | %.3f |\n"+
			"| candidate luminance | %.3f |\n"+
			"| contrast ratio | %.2f:1 |\n"+
			"| score | %.1f / 100 |\n",
		brandLum, candLum, ratio, value,
	)

	return Score{Value: value, Contrast: ratio, Breakdown: breakdown}, nil
}

// luminance computes WCAG relative luminance for a #rrggbb color.
func luminance(hex string) (float64, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*channel(r) + 0.7152*channel(g) + 0.0722*channel(b), nil
}

// channel linearizes one sRGB channel.
func channel(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ValidateHex checks that hex is a well-formed "#rrggbb" color code.
func ValidateHex(hex string) error {
	_, _, _, err := parseHex(hex)
	return err
}

// parseHex parses a "#rrggbb" color code.
func parseHex(hex string) (r, g, b uint8, err error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", models.ErrInvalidHex, hex)
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(strings.ToLower(trimmed), "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", models.ErrInvalidHex, hex)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}

// Best returns the highest-scoring token and its score.
func Best(s Scorer, brandHex string, candidates []models.Token) (models.Token, Score, error) {
	if len(candidates) == 0 {
		return models.Token{}, Score{}, fmt.Errorf("no candidate tokens to score")
	}

	var bestToken models.Token
	var bestScore Score
	found := false

	for _, token := range candidates {
		score, err := s.Score(brandHex, token.Hex)
		if err != nil {
			return models.Token{}, Score{}, fmt.Errorf("scoring %q: %w", token.Name, err)
		}
		if !found || score.Value > bestScore.Value {
			bestToken, bestScore, found = token, score, true
		}
	}

	return bestToken, bestScore, nil
}
