// Package render draws the loaded bar and the plate catalog as terminal text,
// using the pixel geometry from package geometry scaled to cells.
package render

import (
	"barbell/internal/geometry"
	"barbell/internal/loadout"
)

// ZoneKind identifies a clickable region.
type ZoneKind int

const (
	// ZoneCollar is the bar-weight selector on the collar.
	ZoneCollar ZoneKind = iota
	// ZonePlate is a plate on the bar; Index is its list position.
	ZonePlate
	// ZoneCatalog is a plate in the add row; Index is its catalog position.
	ZoneCatalog
)

// Zone is a clickable rectangle, in cells relative to the picture's top-left.
type Zone struct {
	Kind       ZoneKind
	Index      int
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside z.
func (z Zone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// Picture is a rendered block plus its click zones.
type Picture struct {
	Text          string
	Width, Height int
	Zones         []Zone
}

// Hit returns the last zone containing (x, y); later zones are drawn on top.
func (p Picture) Hit(x, y int) (Zone, bool) {
	for i := len(p.Zones) - 1; i >= 0; i-- {
		if p.Zones[i].Contains(x, y) {
			return p.Zones[i], true
		}
	}
	return Zone{}, false
}

// Options controls scaling, width and highlighting.
type Options struct {
	Scale geometry.Scale
	// Viewport is the available width in columns; 0 means unlimited.
	Viewport int
	Shape    Shape
	// Focus is the index of the highlighted plate, or -1.
	Focus int
}

// DefaultOptions uses the default scale, the side shape and no focus.
func DefaultOptions() Options {
	return Options{Scale: geometry.DefaultScale, Shape: Side{}, Focus: -1}
}

func (o Options) normalized() Options {
	if o.Scale.ColPx <= 0 || o.Scale.RowPx <= 0 {
		o.Scale = geometry.DefaultScale
	}
	if o.Shape == nil {
		o.Shape = Side{}
	}
	return o
}

type placed struct {
	x, y, w, h int
	weight     float64
}

// layoutPlates places plates left to right from x, each centred in height.
func layoutPlates(weights []float64, x, height int, o Options) []placed {
	gap := o.Scale.Cols(geometry.PlateMargin)
	out := make([]placed, len(weights))
	for i, w := range weights {
		cols, rows := o.Shape.Size(w, o.Scale)
		out[i] = placed{x: x, y: geometry.Centre(height, rows), w: cols, h: rows, weight: w}
		x += cols + gap
	}
	return out
}

func drawPlates(c *canvas, plates []placed, zone ZoneKind, o Options) []Zone {
	zones := make([]Zone, 0, len(plates))
	for i, p := range plates {
		k := kindPlate
		if i == o.Focus {
			k = kindPlateFocused
		}
		cols, rows := p.w, p.h
		c.fill(p.x, p.y, cols, rows, k, func(col, row int) bool {
			return o.Shape.Covers(col, row, cols, rows)
		})
		c.label(p.x, p.y+rows/2, cols, loadout.FormatWeight(p.weight), k)
		if p.x >= c.w {
			continue
		}
		zones = append(zones, Zone{Kind: zone, Index: i, X: p.x, Y: p.y, W: min(p.w, c.w-p.x), H: p.h})
	}
	return zones
}

// Barbell draws the bar, its collar labelled with barWeight, and plates in
// list order to the right of the collar.
func Barbell(barWeight float64, plates []float64, o Options) Picture {
	o = o.normalized()
	s := o.Scale
	height := s.Rows(geometry.GraphicHeight)

	barLen := geometry.BarLength
	if o.Viewport > 0 {
		barLen = geometry.VisibleBarLength(s.Px(o.Viewport))
	}
	barCols := s.Cols(barLen)
	barRows := s.Rows(geometry.BarThickness.At(barWeight))

	collarCols := s.Cols(geometry.CollarWidth(barWeight))
	collarRows := s.Rows(geometry.CollarThickness(barWeight))
	collarX := collarCols
	collarY := geometry.Centre(height, collarRows)

	laid := layoutPlates(plates, s.Cols(geometry.PlateRowStart(barWeight)), height, o)
	width := max(barCols, collarX+collarCols)
	if n := len(laid); n > 0 {
		width = max(width, laid[n-1].x+laid[n-1].w)
	}
	if o.Viewport > 0 {
		width = min(width, o.Viewport)
	}

	c := newCanvas(width, height)
	c.fill(0, geometry.Centre(height, barRows), barCols, barRows, kindBar, nil)
	c.fill(collarX, collarY, collarCols, collarRows, kindCollar, nil)
	c.label(collarX, collarY+collarRows/2, collarCols, loadout.FormatWeight(barWeight), kindCollar)

	zones := []Zone{{Kind: ZoneCollar, X: collarX, Y: collarY, W: collarCols, H: collarRows}}
	zones = append(zones, drawPlates(c, laid, ZonePlate, o)...)

	return Picture{Text: c.String(), Width: width, Height: height, Zones: zones}
}

// PlateRow draws weights side by side, as in the add row, each centred in
// the height of the tallest.
func PlateRow(weights []float64, o Options) Picture {
	o = o.normalized()
	height := 1
	for _, w := range weights {
		_, rows := o.Shape.Size(w, o.Scale)
		height = max(height, rows)
	}
	laid := layoutPlates(weights, 0, height, o)
	width := 1
	if n := len(laid); n > 0 {
		width = laid[n-1].x + laid[n-1].w
	}
	if o.Viewport > 0 {
		width = min(width, o.Viewport)
	}

	c := newCanvas(width, height)
	zones := drawPlates(c, laid, ZoneCatalog, o)
	return Picture{Text: c.String(), Width: width, Height: height, Zones: zones}
}
