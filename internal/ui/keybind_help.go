package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help view shown after SPC.
// When keyHandler is in leader mode with a buffer (e.g. "SPC x"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return boxStyle.Render(Styles.Hint.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings))
}

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	return m
}

// loadoutKeyMap holds the keys LoadoutView handles directly, plus Reset and
// Quit which are bound in the registry and listed only for the hint line.
type loadoutKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Switch   key.Binding
	Activate key.Binding
	Remove   key.Binding
	Quick    key.Binding
	Bar      key.Binding
	BarPrev  key.Binding
	BarNext  key.Binding
	Shape    key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func newLoadoutKeyMap() loadoutKeyMap {
	return loadoutKeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Switch:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch row")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/remove")),
		Remove:   key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "remove")),
		Quick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "add plate")),
		Bar:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bar weight")),
		BarPrev:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "lighter bar")),
		BarNext:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "heavier bar")),
		Shape:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "shape")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k loadoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quick, k.Switch, k.Left, k.Right, k.Activate, k.Remove, k.Bar, k.BarNext, k.Shape, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k loadoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
