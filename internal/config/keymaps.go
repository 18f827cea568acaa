package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Selection
	AutoSelect   string `yaml:"auto_select"`
	ManualSelect string `yaml:"manual_select"`
	SaveAccent   string `yaml:"save_accent"`

	// Navigation
	PrevSwatch string `yaml:"prev_swatch"`
	NextSwatch string `yaml:"next_swatch"`

	// Other
	ToggleBreakdown string `yaml:"toggle_breakdown"`
	ExportPreview   string `yaml:"export_preview"`
	Quit            string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Selection
		AutoSelect:   "a",
		ManualSelect: "m",
		SaveAccent:   "s",

		// Navigation
		PrevSwatch: "h",
		NextSwatch: "l",

		// Other
		ToggleBreakdown: "b",
		ExportPreview:   "x",
		Quit:            "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AutoSelect == "" {
		k.AutoSelect = defaults.AutoSelect
	}
	if k.ManualSelect == "" {
		k.ManualSelect = defaults.ManualSelect
	}
	if k.SaveAccent == "" {
		k.SaveAccent = defaults.SaveAccent
	}
	if k.PrevSwatch == "" {
		k.PrevSwatch = defaults.PrevSwatch
	}
	if k.NextSwatch == "" {
		k.NextSwatch = defaults.NextSwatch
	}
	if k.ToggleBreakdown == "" {
		k.ToggleBreakdown = defaults.ToggleBreakdown
	}
	if k.ExportPreview == "" {
		k.ExportPreview = defaults.ExportPreview
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
