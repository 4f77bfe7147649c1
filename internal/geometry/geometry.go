// Package geometry maps weights to the visual dimensions of the bar and its
// plates. All lengths are in pixels of the reference layout; Scale converts
// them to terminal cells.
package geometry

import "math"

// Reference layout, in pixels.
const (
	GraphicHeight  = 220.0
	BarLength      = 400.0
	MaxPlateRadius = 200.0
	PlateMargin    = 2.0
	PlateRowOffset = 4.0
	// ViewportFraction caps the bar length relative to the available width.
	ViewportFraction = 0.9
)

// Linear is a two-point linear interpolation through (X1, Y1) and (X2, Y2).
// X1 must differ from X2.
type Linear struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Slope returns m = (Y2-Y1)/(X2-X1).
func (l Linear) Slope() float64 {
	return (l.Y2 - l.Y1) / (l.X2 - l.X1)
}

// Intercept returns b = Y1 - X1*m.
func (l Linear) Intercept() float64 {
	return l.Y1 - l.X1*l.Slope()
}

// At returns m*w + b. It is evaluated in weighted form so the anchors map
// back to Y1 and Y2 without rounding drift.
func (l Linear) At(w float64) float64 {
	return (l.Y1*(l.X2-w) + l.Y2*(w-l.X1)) / (l.X2 - l.X1)
}

var (
	// BarThickness maps bar weight to bar thickness.
	BarThickness = Linear{X1: 15, Y1: 16, X2: 45, Y2: 24}
	// PlateRadius maps plate weight to plate height (the disc diameter).
	PlateRadius = Linear{X1: 5, Y1: 100, X2: 45, Y2: MaxPlateRadius}
	// PlateWidth maps plate weight to plate thickness along the bar.
	PlateWidth = Linear{X1: 5, Y1: 30, X2: 45, Y2: 50}
)

// CollarThickness is three times the bar thickness.
func CollarThickness(barWeight float64) float64 {
	return 3 * BarThickness.At(barWeight)
}

// CollarWidth is half the collar thickness.
func CollarWidth(barWeight float64) float64 {
	return CollarThickness(barWeight) / 2
}

// PlateRowStart is the x offset of the first plate: past the collar plus a
// small gap.
func PlateRowStart(barWeight float64) float64 {
	return 2*CollarWidth(barWeight) + PlateRowOffset
}

// VisibleBarLength caps BarLength at ViewportFraction of viewport (pixels).
// A non-positive viewport means uncapped.
func VisibleBarLength(viewport float64) float64 {
	if viewport <= 0 {
		return BarLength
	}
	return math.Min(BarLength, viewport*ViewportFraction)
}

// Scale converts reference pixels to terminal cells.
type Scale struct {
	ColPx float64 // pixels per column
	RowPx float64 // pixels per row
}

// DefaultScale fits the 220px graphic into 11 rows and the 400px bar into
// 40 columns.
var DefaultScale = Scale{ColPx: 10, RowPx: 20}

// Cols converts a horizontal length to columns, rounding to nearest, min 1.
func (s Scale) Cols(px float64) int {
	return cells(px, s.ColPx)
}

// Rows converts a vertical length to rows, rounding to nearest, min 1.
func (s Scale) Rows(px float64) int {
	return cells(px, s.RowPx)
}

// Px converts a column count back to pixels.
func (s Scale) Px(cols int) float64 {
	return float64(cols) * s.ColPx
}

func cells(px, per float64) int {
	n := int(math.Round(px / per))
	if n < 1 {
		return 1
	}
	return n
}

// Centre returns the top offset that vertically centres span within total.
func Centre(total, span int) int {
	if span >= total {
		return 0
	}
	return (total - span) / 2
}
