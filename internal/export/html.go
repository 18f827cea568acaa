// Package export writes a static HTML preview of the current palette: the
// brand color next to each token swatch, with the role dot badge pinned to
// every swatch corner. The page is handoff material, not an app; it carries
// no scripts.
package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/danielmtz/paleta/internal/models"
	"github.com/danielmtz/paleta/internal/roledot"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>paleta preview</title>
<style>
body { font-family: sans-serif; background: #1c1c1c; color: #d0d0d0; padding: 2rem; }
.brand { display: inline-block; width: 96px; height: 96px; border-radius: 8px; margin-bottom: 2rem; }
.swatches { display: flex; flex-wrap: wrap; gap: 1rem; }
.swatch { position: relative; width: 72px; height: 72px; border-radius: 8px; }
.name { display: block; margin-top: 80px; font-size: 12px; text-align: center; }
</style>
</head>
<body>
<h1>paleta preview</h1>
<div class="brand" style="background-color: {{.BrandHex}}"></div>
<div class="swatches">
{{- range .Swatches}}
<div class="swatch" style="background-color: {{.Hex}}">
<span {{.Marker}} style="{{.DotStyle}}"></span>
<span class="name">{{.Name}}</span>
</div>
{{- end}}
</div>
</body>
</html>
`

// swatchView is the per-token template payload.
type swatchView struct {
	Name string
	Hex  string
	// Marker is the complete identifying attribute (data-role-dot="...");
	// typed HTMLAttr so the template engine emits it verbatim
	Marker template.HTMLAttr
	// DotStyle is the roledot inline style; typed CSS so the template
	// engine passes the declaration list through intact
	DotStyle template.CSS
}

type pageView struct {
	BrandHex string
	Swatches []swatchView
}

var page = template.Must(template.New("preview").Parse(pageTemplate))

// WriteHTML renders the preview page for the given brand color and tokens.
// Every token gets its role dot badge; a token with an unknown role category
// aborts the export.
func WriteHTML(w io.Writer, brandHex string, tokens []models.Token) error {
	view := pageView{BrandHex: brandHex}

	for _, token := range tokens {
		dot, err := roledot.New(token.Role)
		if err != nil {
			return fmt.Errorf("export: token %q: %w", token.Name, err)
		}
		marker := fmt.Sprintf("%s=%q", roledot.MarkerAttr, dot.Category())
		view.Swatches = append(view.Swatches, swatchView{
			Name:     token.Name,
			Hex:      token.Hex,
			Marker:   template.HTMLAttr(marker),
			DotStyle: template.CSS(dot.InlineStyle()),
		})
	}

	return page.Execute(w, view)
}
