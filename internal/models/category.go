package models

// RoleCategory classifies the functional purpose of a color in the design
// system. Categories drive the role dot badge shown next to swatches.
type RoleCategory string

const (
	// RolePrimary marks the main brand color role.
	RolePrimary RoleCategory = "primary"

	// RoleSecondary marks supporting brand color roles.
	RoleSecondary RoleCategory = "secondary"

	// RoleAccent marks highlight/accent color roles.
	RoleAccent RoleCategory = "accent"

	// RoleSemantic marks status colors (success, warning, error).
	RoleSemantic RoleCategory = "semantic"

	// RoleLink marks interactive link colors.
	RoleLink RoleCategory = "link"
)

// Categories lists every defined role category in display order.
func Categories() []RoleCategory {
	return []RoleCategory{RolePrimary, RoleSecondary, RoleAccent, RoleSemantic, RoleLink}
}

// Valid reports whether c is one of the five defined categories.
func (c RoleCategory) Valid() bool {
	switch c {
	case RolePrimary, RoleSecondary, RoleAccent, RoleSemantic, RoleLink:
		return true
	}
	return false
}
