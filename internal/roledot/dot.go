// Package roledot builds the small circular badge that tags a swatch with
// its semantic role category. A Dot is a detached marker description: the
// TUI renders it as a colored glyph, the HTML preview export attaches it as
// an absolutely positioned corner badge.
package roledot

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/danielmtz/paleta/internal/models"
)

// Presentation contract for the exported badge, in CSS pixels.
const (
	// Size is the badge diameter.
	Size = 12

	// Offset is the distance from the top-right corner of the container.
	Offset = 4

	// BorderWidth keeps the badge legible against any swatch color.
	BorderWidth = 2

	// BorderColor is the solid border color.
	BorderColor = "#ffffff"

	// Shadow is a subtle dark drop shadow for contrast on light backgrounds.
	Shadow = "0 1px 3px rgba(0, 0, 0, 0.3)"

	// ZIndex stacks the badge above pre-existing badges in the container.
	ZIndex = 10

	// MarkerAttr identifies a badge for later query/removal.
	MarkerAttr = "data-role-dot"
)

// categoryColors is the fixed role category → fill color table. It is not
// configurable; themes restyle the tool chrome, never the role colors.
var categoryColors = map[models.RoleCategory]string{
	models.RolePrimary:   "#6366f1",
	models.RoleSecondary: "#8b5cf6",
	models.RoleAccent:    "#ec4899",
	models.RoleSemantic:  "#10b981",
	models.RoleLink:      "#3b82f6",
}

// Dot is an immutable marker for one role category. Construct with New.
type Dot struct {
	category models.RoleCategory
	color    string
}

// New creates the marker for the given category. Unknown categories fail
// closed: no badge is produced and the caller decides how to proceed.
func New(category models.RoleCategory) (Dot, error) {
	color, ok := categoryColors[category]
	if !ok {
		return Dot{}, fmt.Errorf("roledot: %w: %q", models.ErrUnknownCategory, category)
	}
	return Dot{category: category, color: color}, nil
}

// ColorFor returns the fill color for a category without building a Dot.
func ColorFor(category models.RoleCategory) (string, error) {
	color, ok := categoryColors[category]
	if !ok {
		return "", fmt.Errorf("roledot: %w: %q", models.ErrUnknownCategory, category)
	}
	return color, nil
}

// Category returns the role category this dot represents.
func (d Dot) Category() models.RoleCategory {
	return d.category
}

// Color returns the fill color from the category table.
func (d Dot) Color() string {
	return d.color
}

// InlineStyle renders the badge's full style declaration for the HTML
// preview export. The badge is a fixed-size circle pinned to the top-right
// of its (position:relative) container, never intercepts pointer events, and
// stacks above other badges.
func (d Dot) InlineStyle() string {
	return fmt.Sprintf(
		"position: absolute; top: %dpx; right: %dpx; width: %dpx; height: %dpx; "+
			"border-radius: 50%%; background-color: %s; border: %dpx solid %s; "+
			"box-shadow: %s; pointer-events: none; z-index: %d;",
		Offset, Offset, Size, Size, d.color, BorderWidth, BorderColor, Shadow, ZIndex,
	)
}

// Attributes returns the identifying attributes the rendering layer attaches
// alongside the style, keyed by attribute name.
func (d Dot) Attributes() map[string]string {
	return map[string]string{MarkerAttr: string(d.category)}
}

// Glyph renders the terminal form of the badge: a single dot colored with
// the category fill.
func (d Dot) Glyph() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.color)).
		Render("●")
}
