package colors

// Default returns the default color scheme (indigo theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#6366F1",

		// UI elements
		SwatchBorder:   "#585858",
		SelectedBorder: "#D75FD7",
		PanelBorder:    "#5F87D7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Error banner
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",

		// Status bar
		StatusBarBg:   "#6366F1", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
