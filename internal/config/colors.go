package config

import "github.com/danielmtz/paleta/internal/config/colors"

// ColorScheme re-exports the colors package scheme for config embedding
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (indigo theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
