package models

// Token represents a single named color from the design-token dataset.
// Tokens are read-only reference data, similar to DADS semantic colors.
type Token struct {
	Name string       `yaml:"name"`
	Hex  string       `yaml:"hex"`  // Hex color code (e.g., "#6366f1")
	Role RoleCategory `yaml:"role"` // Semantic role this token plays
}
