package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, totals
	ColorHighlight = "205" // Magenta - selection, borders
	ColorMuted     = "241" // Gray - hints, separator
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "196" // Red - destructive confirmations
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title      lipgloss.Style // Bold accent - screen title
	Total      lipgloss.Style // Bold highlight - total weight value
	Label      lipgloss.Style // Normal text
	Separator  lipgloss.Style // Rule between bar and add row
	Hint       lipgloss.Style // Help/hint text
	Section    lipgloss.Style // Focused row marker
	Muted      lipgloss.Style // Unfocused row marker
	Selected   lipgloss.Style // Selected list items
	BoxCompact lipgloss.Style // Modal box
	BoxWarning lipgloss.Style // Confirmation box
	Warning    lipgloss.Style // Confirmation title
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Total: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(1),
	BoxWarning: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(0, 1).
		Margin(1),
	Warning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
