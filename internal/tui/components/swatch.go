package components

import (
	"charm.land/lipgloss/v2"

	"github.com/danielmtz/paleta/internal/models"
	"github.com/danielmtz/paleta/internal/roledot"
)

// RenderSwatch renders a single token as a bordered card: a color block, the
// token name, and the role dot badge in the card's corner line.
func RenderSwatch(token models.Token, selected bool) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(token.Hex)).
		Render("      ")

	badge := ""
	if dot, err := roledot.New(token.Role); err == nil {
		// Unknown roles are filtered at load time; skip the badge if one
		// slips through rather than failing the whole view
		badge = " " + dot.Glyph()
	}

	body := block + badge + "\n" + token.Name + "\n" + token.Hex

	if selected {
		return SelectedSwatchStyle.Render(body)
	}
	return SwatchStyle.Render(body)
}

// RenderSwatchRow lays the swatches out horizontally with the selection
// highlighted.
func RenderSwatchRow(tokens []models.Token, selectedIdx int) string {
	cards := make([]string, 0, len(tokens))
	for i, token := range tokens {
		cards = append(cards, RenderSwatch(token, i == selectedIdx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
