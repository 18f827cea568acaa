package components

import (
	"strings"

	"github.com/danielmtz/paleta/internal/accent"
	"github.com/danielmtz/paleta/internal/config"
)

// RenderStatusBar renders the key hints, graying out selection modes the
// error policy currently blocks.
func RenderStatusBar(km config.KeyMappings, state *accent.State, width int) string {
	auto := km.AutoSelect + " auto"
	if state.IsAutoSelectionDisabled() {
		auto = DisabledStyle.Render(auto)
	}

	manual := km.ManualSelect + " manual"
	if state.IsManualSelectionDisabled() {
		manual = DisabledStyle.Render(manual)
	}

	hints := []string{
		auto,
		manual,
		km.SaveAccent + " save",
		km.ToggleBreakdown + " breakdown",
		km.ExportPreview + " export",
		km.Quit + " quit",
	}

	return StatusBarStyle.Width(width).Render(strings.Join(hints, "  "))
}
