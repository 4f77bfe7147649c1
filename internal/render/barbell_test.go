package render

import (
	"strings"
	"testing"

	"barbell/internal/geometry"
	"barbell/internal/loadout"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(p Picture) []string {
	return strings.Split(p.Text, "\n")
}

func TestBarbell_EmptyBar(t *testing.T) {
	p := Barbell(45, nil, DefaultOptions())

	assert.Equal(t, 11, p.Height)
	assert.Equal(t, 40, p.Width)
	assert.Len(t, lines(p), 11)
	require.Len(t, p.Zones, 1)
	assert.Equal(t, Zone{Kind: ZoneCollar, X: 4, Y: 3, W: 4, H: 4}, p.Zones[0])
	assert.Contains(t, p.Text, "45")
}

func TestBarbell_LinesHaveUniformWidth(t *testing.T) {
	p := Barbell(35, []float64{45, 5, 25}, DefaultOptions())
	for i, l := range lines(p) {
		assert.Equal(t, p.Width, lipgloss.Width(l), "line %d", i)
	}
}

func TestBarbell_PlateZonesInListOrder(t *testing.T) {
	p := Barbell(45, []float64{45, 25}, DefaultOptions())

	require.Len(t, p.Zones, 3)
	assert.Equal(t, Zone{Kind: ZonePlate, Index: 0, X: 8, Y: 0, W: 5, H: 10}, p.Zones[1])
	assert.Equal(t, Zone{Kind: ZonePlate, Index: 1, X: 14, Y: 1, W: 4, H: 8}, p.Zones[2])
	assert.Contains(t, p.Text, "25")
}

func TestBarbell_PlatesStartPastCollar(t *testing.T) {
	for _, bar := range loadout.BarCatalog {
		p := Barbell(bar, []float64{5}, DefaultOptions())
		collar, plate := p.Zones[0], p.Zones[1]
		assert.GreaterOrEqual(t, plate.X, collar.X+collar.W, "bar %v", bar)
	}
}

func TestBarbell_HeavierBarIsThicker(t *testing.T) {
	light := Barbell(15, nil, DefaultOptions()).Zones[0]
	heavy := Barbell(45, nil, DefaultOptions()).Zones[0]
	assert.Less(t, light.H, heavy.H)
	assert.Less(t, light.W, heavy.W)
}

func TestBarbell_ViewportCapsWidth(t *testing.T) {
	o := DefaultOptions()
	o.Viewport = 20
	p := Barbell(45, []float64{45, 45, 45, 45}, o)

	assert.Equal(t, 20, p.Width)
	for _, z := range p.Zones {
		assert.LessOrEqual(t, z.X+z.W, 20)
	}
	// 4 plates at x=8,14,20,26: the last two start off-canvas.
	assert.Len(t, p.Zones, 3)
}

func TestDrawPlates_FocusHighlightsOnePlate(t *testing.T) {
	o := DefaultOptions().normalized()
	o.Focus = 1
	laid := layoutPlates([]float64{10, 10}, 0, 11, o)
	c := newCanvas(20, 11)

	zones := drawPlates(c, laid, ZonePlate, o)

	require.Len(t, zones, 2)
	first, second := zones[0], zones[1]
	assert.Equal(t, kindPlate, c.cells[first.Y][first.X].kind)
	assert.Equal(t, kindPlateFocused, c.cells[second.Y][second.X].kind)
	assert.True(t, c.cells[second.Y+second.H/2][second.X+1].label)
}

func TestBarbell_Hit(t *testing.T) {
	p := Barbell(45, []float64{45, 25}, DefaultOptions())

	z, ok := p.Hit(5, 4)
	require.True(t, ok)
	assert.Equal(t, ZoneCollar, z.Kind)

	z, ok = p.Hit(15, 5)
	require.True(t, ok)
	assert.Equal(t, ZonePlate, z.Kind)
	assert.Equal(t, 1, z.Index)

	_, ok = p.Hit(30, 0)
	assert.False(t, ok)
}

func TestPlateRow_Catalog(t *testing.T) {
	p := PlateRow(loadout.PlateCatalog, DefaultOptions())

	assert.Equal(t, 10, p.Height, "tallest plate is 45")
	require.Len(t, p.Zones, len(loadout.PlateCatalog))
	for i, z := range p.Zones {
		assert.Equal(t, ZoneCatalog, z.Kind)
		assert.Equal(t, i, z.Index)
		if i > 0 {
			prev := p.Zones[i-1]
			assert.Greater(t, z.X, prev.X+prev.W-1)
		}
	}
	for _, w := range loadout.PlateCatalog {
		assert.Contains(t, p.Text, loadout.FormatWeight(w))
	}
}

func TestPlateRow_Empty(t *testing.T) {
	p := PlateRow(nil, DefaultOptions())
	assert.Equal(t, 1, p.Height)
	assert.Empty(t, p.Zones)
}

func TestOptions_Normalized(t *testing.T) {
	o := Options{Focus: -1}.normalized()
	assert.Equal(t, geometry.DefaultScale, o.Scale)
	assert.Equal(t, "side", o.Shape.Name())
}
