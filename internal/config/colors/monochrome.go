package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// UI elements
		SwatchBorder:   "#585858",
		SelectedBorder: "#FFFFFF",
		PanelBorder:    "#FFFFFF",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Error banner
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",

		// Status bar
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#D0D0D0",
	}
}
