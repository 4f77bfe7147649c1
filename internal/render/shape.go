package render

import (
	"fmt"
	"strings"

	"barbell/internal/geometry"
)

// Shape is how a plate is drawn: a footprint sized from its weight, and
// which cells of that footprint it covers.
type Shape interface {
	Name() string
	Size(weight float64, s geometry.Scale) (cols, rows int)
	Covers(col, row, cols, rows int) bool
}

// Side draws a plate edge-on: PlateWidth wide, PlateRadius tall.
type Side struct{}

func (Side) Name() string { return "side" }

func (Side) Size(weight float64, s geometry.Scale) (int, int) {
	return s.Cols(geometry.PlateWidth.At(weight)), s.Rows(geometry.PlateRadius.At(weight))
}

func (Side) Covers(col, row, cols, rows int) bool { return true }

// Disc draws a plate face-on as an ellipse with diameter PlateRadius on both
// axes.
type Disc struct{}

func (Disc) Name() string { return "disc" }

func (Disc) Size(weight float64, s geometry.Scale) (int, int) {
	d := geometry.PlateRadius.At(weight)
	return s.Cols(d), s.Rows(d)
}

func (Disc) Covers(col, row, cols, rows int) bool {
	rx, ry := float64(cols)/2, float64(rows)/2
	dx := (float64(col) + 0.5 - rx) / rx
	dy := (float64(row) + 0.5 - ry) / ry
	return dx*dx+dy*dy <= 1
}

// Shapes lists the available shapes; the first is the default.
var Shapes = []Shape{Side{}, Disc{}}

// ShapeByName resolves "side" or "disc" (case-insensitive). Empty means the
// default.
func ShapeByName(name string) (Shape, error) {
	if name == "" {
		return Shapes[0], nil
	}
	for _, s := range Shapes {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown plate shape %q (want side or disc)", name)
}

// NextShape returns the shape after cur in Shapes, wrapping.
func NextShape(cur Shape) Shape {
	for i, s := range Shapes {
		if cur != nil && s.Name() == cur.Name() {
			return Shapes[(i+1)%len(Shapes)]
		}
	}
	return Shapes[0]
}
