package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// kind is what occupies a canvas cell.
type kind int

const (
	kindEmpty kind = iota
	kindBar
	kindCollar
	kindPlate
	kindPlateFocused
)

type cell struct {
	ch    rune
	kind  kind
	label bool
}

// canvas is a fixed grid of cells, rendered row by row.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, v cell) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = v
}

// fill paints a w×h block at (x, y). covers, if non-nil, masks the block.
func (c *canvas) fill(x, y, w, h int, k kind, covers func(col, row int) bool) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if covers != nil && !covers(col, row) {
				continue
			}
			c.set(x+col, y+row, cell{ch: fillGlyph, kind: k})
		}
	}
}

// label centres text on row y within [x, x+w). Text wider than w is cut.
func (c *canvas) label(x, y, w int, text string, k kind) {
	r := []rune(text)
	if len(r) > w {
		r = r[:w]
	}
	start := x + (w-len(r))/2
	for i, ch := range r {
		c.set(start+i, y, cell{ch: ch, kind: k, label: true})
	}
}

// String renders the grid, styling runs of identical cells together.
func (c *canvas) String() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].kind == row[start].kind && row[x].label == row[start].label {
				continue
			}
			b.WriteString(styleFor(row[start]).Render(runString(row[start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func runString(cells []cell) string {
	r := make([]rune, len(cells))
	for i, c := range cells {
		r[i] = c.ch
	}
	return string(r)
}

func styleFor(c cell) lipgloss.Style {
	if c.kind == kindEmpty {
		return lipgloss.NewStyle()
	}
	if c.label {
		return styles.Label[c.kind]
	}
	return styles.Fill[c.kind]
}
