package roledot

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/danielmtz/paleta/internal/models"
)

// TestNew_CategoryColors verifies each defined category maps to exactly its
// table color.
func TestNew_CategoryColors(t *testing.T) {
	tests := []struct {
		category models.RoleCategory
		want     string
	}{
		{models.RolePrimary, "#6366f1"},
		{models.RoleSecondary, "#8b5cf6"},
		{models.RoleAccent, "#ec4899"},
		{models.RoleSemantic, "#10b981"},
		{models.RoleLink, "#3b82f6"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			dot, err := New(tt.category)
			if err != nil {
				t.Fatalf("New(%q) returned error: %v", tt.category, err)
			}
			if dot.Color() != tt.want {
				t.Errorf("Color() = %q, want %q", dot.Color(), tt.want)
			}
			if dot.Category() != tt.category {
				t.Errorf("Category() = %q, want %q", dot.Category(), tt.category)
			}
		})
	}
}

// TestNew_UnknownCategory ensures construction fails closed rather than
// guessing a default color.
// Edge case: a caller passes a category outside the fixed table.
func TestNew_UnknownCategory(t *testing.T) {
	if _, err := New("tertiary"); !errors.Is(err, models.ErrUnknownCategory) {
		t.Errorf("New(\"tertiary\") error = %v, want ErrUnknownCategory", err)
	}
	if _, err := ColorFor(""); !errors.Is(err, models.ErrUnknownCategory) {
		t.Errorf("ColorFor(\"\") error = %v, want ErrUnknownCategory", err)
	}
}

// TestInlineStyle_Contract checks every guaranteed presentation property of
// the exported badge: size, circular shape, fill, corner position, border,
// shadow, pointer transparency and stacking.
func TestInlineStyle_Contract(t *testing.T) {
	dot, err := New(models.RoleAccent)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	style := dot.InlineStyle()
	wantParts := []string{
		"position: absolute;",
		fmt.Sprintf("top: %dpx;", Offset),
		fmt.Sprintf("right: %dpx;", Offset),
		fmt.Sprintf("width: %dpx;", Size),
		fmt.Sprintf("height: %dpx;", Size),
		"border-radius: 50%;",
		"background-color: #ec4899;",
		fmt.Sprintf("border: %dpx solid %s;", BorderWidth, BorderColor),
		fmt.Sprintf("box-shadow: %s;", Shadow),
		"pointer-events: none;",
		fmt.Sprintf("z-index: %d;", ZIndex),
	}
	for _, part := range wantParts {
		if !strings.Contains(style, part) {
			t.Errorf("InlineStyle() missing %q\nstyle: %s", part, style)
		}
	}
}

// TestInlineStyle_Deterministic ensures repeated calls produce identical
// output; dots are stateless between calls.
func TestInlineStyle_Deterministic(t *testing.T) {
	a, _ := New(models.RoleLink)
	b, _ := New(models.RoleLink)
	if a.InlineStyle() != b.InlineStyle() {
		t.Error("InlineStyle() differs across independently constructed dots")
	}
}

// TestAttributes_Marker ensures the identifying marker attribute carries the
// category so badges can be queried and removed later.
func TestAttributes_Marker(t *testing.T) {
	dot, err := New(models.RoleSemantic)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	attrs := dot.Attributes()
	if got := attrs[MarkerAttr]; got != string(models.RoleSemantic) {
		t.Errorf("Attributes()[%q] = %q, want %q", MarkerAttr, got, models.RoleSemantic)
	}
}

// TestGlyph_ContainsDot ensures the terminal rendering contains the dot
// rune regardless of color profile.
func TestGlyph_ContainsDot(t *testing.T) {
	for _, category := range models.Categories() {
		dot, err := New(category)
		if err != nil {
			t.Fatalf("New(%q): %v", category, err)
		}
		if !strings.Contains(dot.Glyph(), "●") {
			t.Errorf("Glyph() for %q does not contain the dot rune", category)
		}
	}
}
