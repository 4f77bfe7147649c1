package ui

import (
	"strconv"
	"strings"

	"barbell/internal/loadout"
	"barbell/internal/render"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const title = "Barbell Calculator"

// LoadoutView shows the total, the loaded bar and the add row.
// It never changes the loadout itself; it emits messages the app applies.
type LoadoutView struct {
	Loadout *loadout.Loadout
	Shape   render.Shape
	Focus   Focus
	// Cursor positions within the add row and the bar.
	CatalogCursor int
	BarCursor     int

	width int
	keys  loadoutKeyMap
	help  help.Model

	// Layout of the last View, for mouse hits.
	barPic, catPic render.Picture
	barTop, catTop int
}

// Ensure LoadoutView implements View.
var _ View = (*LoadoutView)(nil)

// NewLoadoutView creates the main screen for l.
func NewLoadoutView(l *loadout.Loadout, shape render.Shape) *LoadoutView {
	if shape == nil {
		shape = render.Side{}
	}
	return &LoadoutView{
		Loadout: l,
		Shape:   shape,
		Focus:   FocusCatalog,
		keys:    newLoadoutKeyMap(),
		help:    newHelpModel(),
	}
}

// Init implements View.
func (v *LoadoutView) Init() tea.Cmd {
	return nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// ClampCursor keeps BarCursor on an existing plate after removals.
func (v *LoadoutView) ClampCursor() {
	n := len(v.Loadout.Plates())
	if v.BarCursor >= n {
		v.BarCursor = n - 1
	}
	if v.BarCursor < 0 {
		v.BarCursor = 0
	}
}

// Update implements View.
func (v *LoadoutView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
		return v, nil
	case tea.MouseMsg:
		return v, v.handleClick(msg)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *LoadoutView) handleKey(msg tea.KeyMsg) tea.Cmd {
	plates := v.Loadout.Plates()
	switch {
	case key.Matches(msg, v.keys.Quick):
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(loadout.PlateCatalog) {
			return emit(AddPlateMsg{Weight: loadout.PlateCatalog[i]})
		}
	case key.Matches(msg, v.keys.Switch):
		v.Focus = v.Focus.Next()
		v.ClampCursor()
	case key.Matches(msg, v.keys.Left):
		if v.Focus == FocusBar {
			v.BarCursor = max(v.BarCursor-1, 0)
		} else {
			v.CatalogCursor = max(v.CatalogCursor-1, 0)
		}
	case key.Matches(msg, v.keys.Right):
		if v.Focus == FocusBar {
			v.BarCursor = min(v.BarCursor+1, max(len(plates)-1, 0))
		} else {
			v.CatalogCursor = min(v.CatalogCursor+1, len(loadout.PlateCatalog)-1)
		}
	case key.Matches(msg, v.keys.Activate):
		if v.Focus == FocusCatalog {
			return emit(AddPlateMsg{Weight: loadout.PlateCatalog[v.CatalogCursor]})
		}
		if len(plates) > 0 {
			return emit(RemovePlateMsg{Index: v.BarCursor})
		}
	case key.Matches(msg, v.keys.Remove):
		if v.Focus == FocusBar && len(plates) > 0 {
			return emit(RemovePlateMsg{Index: v.BarCursor})
		}
	case key.Matches(msg, v.keys.Bar):
		return emit(ShowBarPickerMsg{})
	case key.Matches(msg, v.keys.BarPrev):
		return emit(SetBarWeightMsg{Weight: loadout.NextBarWeight(v.Loadout.BarWeight(), -1)})
	case key.Matches(msg, v.keys.BarNext):
		return emit(SetBarWeightMsg{Weight: loadout.NextBarWeight(v.Loadout.BarWeight(), 1)})
	case key.Matches(msg, v.keys.Shape):
		return emit(ToggleShapeMsg{})
	}
	return nil
}

func (v *LoadoutView) handleClick(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if z, ok := v.barPic.Hit(msg.X, msg.Y-v.barTop); ok {
		switch z.Kind {
		case render.ZoneCollar:
			return emit(ShowBarPickerMsg{})
		case render.ZonePlate:
			v.Focus, v.BarCursor = FocusBar, z.Index
			return emit(RemovePlateMsg{Index: z.Index})
		}
	}
	if z, ok := v.catPic.Hit(msg.X, msg.Y-v.catTop); ok && z.Index < len(loadout.PlateCatalog) {
		v.Focus, v.CatalogCursor = FocusCatalog, z.Index
		return emit(AddPlateMsg{Weight: loadout.PlateCatalog[z.Index]})
	}
	return nil
}

func (v *LoadoutView) options(focus Focus, cursor int) render.Options {
	o := render.DefaultOptions()
	o.Viewport = v.width
	o.Shape = v.Shape
	if v.Focus == focus {
		o.Focus = cursor
	}
	return o
}

// View implements View.
func (v *LoadoutView) View() string {
	v.ClampCursor()
	bar := v.Loadout.BarWeight()
	plates := v.Loadout.Plates()

	v.barPic = render.Barbell(bar, plates, v.options(FocusBar, v.BarCursor))
	v.catPic = render.PlateRow(loadout.PlateCatalog, v.options(FocusCatalog, v.CatalogCursor))

	ruleWidth := max(v.barPic.Width, v.catPic.Width)
	if v.width > 0 {
		ruleWidth = min(ruleWidth, v.width)
	}

	header := []string{
		Styles.Title.Render(title),
		Styles.Label.Render("Total: ") + Styles.Total.Render(loadout.FormatWeight(v.Loadout.Total())),
		v.rowMarker(FocusBar, len(plates)),
	}
	v.barTop = len(header)

	var b strings.Builder
	b.WriteString(strings.Join(header, "\n") + "\n")
	b.WriteString(v.barPic.Text + "\n")
	b.WriteString(Styles.Separator.Render(strings.Repeat("─", ruleWidth)) + "\n")
	b.WriteString(v.rowMarker(FocusCatalog, len(loadout.PlateCatalog)) + "\n")
	v.catTop = v.barTop + lipgloss.Height(v.barPic.Text) + 2
	b.WriteString(v.catPic.Text + "\n\n")
	b.WriteString(v.help.ShortHelpView(v.keys.ShortHelp()))
	return b.String()
}

func (v *LoadoutView) rowMarker(f Focus, n int) string {
	text := f.String()
	if f == FocusBar {
		text += " (" + pluralPlates(n) + ")"
	}
	if v.Focus == f {
		return Styles.Section.Render("▸ " + text)
	}
	return Styles.Muted.Render("  " + text)
}

func pluralPlates(n int) string {
	switch n {
	case 0:
		return "empty"
	case 1:
		return "1 plate"
	default:
		return strconv.Itoa(n) + " plates"
	}
}
