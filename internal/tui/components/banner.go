package components

import "github.com/danielmtz/paleta/internal/accent"

// RenderErrorBanner renders the active error message, or an empty string in
// the healthy state. The banner shows the message only; which controls are
// disabled is communicated by the controls themselves.
func RenderErrorBanner(snap accent.ErrorState) string {
	if snap.Code == accent.CodeNone {
		return ""
	}
	return ErrorBannerStyle.Render(snap.Message)
}
