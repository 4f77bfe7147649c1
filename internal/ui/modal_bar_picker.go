package ui

import (
	"slices"

	"barbell/internal/loadout"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type barItem float64

func (b barItem) FilterValue() string { return loadout.FormatWeight(float64(b)) }
func (b barItem) Title() string       { return loadout.FormatWeight(float64(b)) }
func (b barItem) Description() string { return "" }

// BarPickerModal selects the bar weight from loadout.BarCatalog.
type BarPickerModal struct {
	list list.Model
}

// Ensure BarPickerModal implements View.
var _ View = (*BarPickerModal)(nil)

// NewBarPickerModal creates a picker with current preselected when it is in
// the catalog.
func NewBarPickerModal(current float64) *BarPickerModal {
	items := make([]list.Item, len(loadout.BarCatalog))
	for i, w := range loadout.BarCatalog {
		items[i] = barItem(w)
	}
	l := list.New(items, NewCompactListDelegate(), 24, len(items)+4)
	l.Title = "Bar weight"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	if i := slices.Index(loadout.BarCatalog, current); i >= 0 {
		l.Select(i)
	}
	return &BarPickerModal{list: l}
}

// Selected returns the highlighted weight.
func (m *BarPickerModal) Selected() float64 {
	if sel, ok := m.list.SelectedItem().(barItem); ok {
		return float64(sel)
	}
	return loadout.DefaultBarWeight
}

// Init implements View.
func (m *BarPickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *BarPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			w := m.Selected()
			return m, func() tea.Msg { return SetBarWeightMsg{Weight: w} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *BarPickerModal) View() string {
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render("Enter: select  Esc: cancel"))
}
