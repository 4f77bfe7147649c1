package ui

import (
	"barbell/internal/loadout"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks before a destructive action.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
	}
}

// NewResetConfirmModal confirms clearing the loadout l.
func NewResetConfirmModal(l *loadout.Loadout) *ConfirmModal {
	label := "Bar back to " + loadout.FormatWeight(loadout.DefaultBarWeight)
	if n := len(l.Plates()); n > 0 {
		label += ", " + pluralPlates(n) + " removed"
	}
	return NewConfirmModal("Reset loadout?", label, func() tea.Msg { return ResetMsg{} })
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.Warning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return Styles.BoxWarning.Render(content)
}
