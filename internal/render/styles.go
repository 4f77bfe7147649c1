package render

import "github.com/charmbracelet/lipgloss"

// Colours of the drawing.
const (
	ColorBar     = "#444444"
	ColorPlate   = "#999999"
	ColorFocus   = "205"
	ColorOnBar   = "#ffffff"
	ColorOnPlate = "#000000"
)

const fillGlyph = '█'

// styles holds fill (glyph foreground) and label (text on background)
// styles per cell kind.
var styles = struct {
	Fill  map[kind]lipgloss.Style
	Label map[kind]lipgloss.Style
}{
	Fill: map[kind]lipgloss.Style{
		kindBar:          lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBar)),
		kindCollar:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBar)),
		kindPlate:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlate)),
		kindPlateFocused: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFocus)),
	},
	Label: map[kind]lipgloss.Style{
		kindBar: lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBar)).
			Foreground(lipgloss.Color(ColorOnBar)),
		kindCollar: lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBar)).
			Foreground(lipgloss.Color(ColorOnBar)).
			Bold(true),
		kindPlate: lipgloss.NewStyle().
			Background(lipgloss.Color(ColorPlate)).
			Foreground(lipgloss.Color(ColorOnPlate)),
		kindPlateFocused: lipgloss.NewStyle().
			Background(lipgloss.Color(ColorFocus)).
			Foreground(lipgloss.Color(ColorOnPlate)).
			Bold(true),
	},
}
