package ui

import (
	"barbell/internal/loadout"
	"barbell/internal/render"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model: the loadout screen plus any open modal.
type AppModel struct {
	Loadout    *loadout.Loadout
	Main       *LoadoutView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
	height int
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Main.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AddPlateMsg:
		a.Loadout.AddPlate(msg.Weight)
		return a, nil
	case RemovePlateMsg:
		a.Loadout.RemovePlate(msg.Index)
		a.Main.ClampCursor()
		return a, nil
	case SetBarWeightMsg:
		a.Loadout.SetBarWeight(msg.Weight)
		a.popModal()
		return a, nil
	case ShowBarPickerMsg:
		if a.Overlays.Len() == 0 {
			a.Overlays.Push(Overlay{View: NewBarPickerModal(a.Loadout.BarWeight()), Dismiss: "esc"})
		}
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case ToggleShapeMsg:
		a.Main.Shape = render.NextShape(a.Main.Shape)
		return a, nil
	case ShowResetConfirmMsg:
		if a.Overlays.Len() == 0 {
			a.Overlays.Push(Overlay{View: NewResetConfirmModal(a.Loadout), Dismiss: "esc"})
		}
		return a, nil
	case ResetMsg:
		a.Loadout.Reset()
		a.Main.ClampCursor()
		a.popModal()
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Open modal gets keys first.
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	case tea.WindowSizeMsg:
		a.height = msg.Height
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
		msg.Y += a.hiddenRows()
		return a.updateMain(msg)
	}
	return a.updateMain(msg)
}

func (a *appModelAdapter) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := a.Main.Update(msg)
	if lv, ok := v.(*LoadoutView); ok {
		a.Main = lv
	}
	return a, cmd
}

// hiddenRows is how many lines at the top of the frame the renderer drops
// when the frame is taller than the terminal. Mouse rows are screen rows.
func (a *appModelAdapter) hiddenRows() int {
	if a.height <= 0 {
		return 0
	}
	return max(0, lipgloss.Height(a.View())-a.height)
}

// popModal closes the modal that sent the message being handled, if any.
func (a *appModelAdapter) popModal() {
	if top, ok := a.Overlays.Peek(); ok {
		switch top.View.(type) {
		case *BarPickerModal, *ConfirmModal:
			a.Overlays.Pop()
		}
	}
}

// View implements tea.Model. Modals and the leader help render below the
// main screen so its click zones keep their positions.
func (a *appModelAdapter) View() string {
	base := a.Main.View()
	if top, ok := a.Overlays.Peek(); ok {
		base += "\n" + top.View.View()
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler)
	}
	return base
}

// NewAppModel creates the root application model over l.
func NewAppModel(l *loadout.Loadout, shape render.Shape) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC b", emit(ShowBarPickerMsg{}), "Bar weight")
	reg.BindWithDesc("SPC v", emit(ToggleShapeMsg{}), "Plate shape")
	reg.BindWithDesc("R", emit(ShowResetConfirmMsg{}), "Reset")
	reg.BindWithDesc("SPC r", emit(ShowResetConfirmMsg{}), "Reset")
	return &AppModel{
		Loadout:    l,
		Main:       NewLoadoutView(l, shape),
		KeyHandler: NewKeyHandler(reg),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
