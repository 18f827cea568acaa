package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderBreakdown renders the markdown score breakdown inside the panel
// frame. Falls back to the raw markdown if glamour fails.
func RenderBreakdown(markdown string, width int) string {
	if markdown == "" {
		return ""
	}

	rendered := markdown
	if renderer, err := getRenderer(width); err == nil {
		if out, err := renderer.Render(markdown); err == nil {
			rendered = strings.TrimSpace(out)
		}
	}

	return PanelStyle.Render(rendered)
}
