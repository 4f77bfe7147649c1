package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear_Anchors(t *testing.T) {
	tests := []struct {
		name string
		l    Linear
		x, y float64
	}{
		{"bar low", BarThickness, 15, 16},
		{"bar high", BarThickness, 45, 24},
		{"radius low", PlateRadius, 5, 100},
		{"radius high", PlateRadius, 45, 200},
		{"width low", PlateWidth, 5, 30},
		{"width high", PlateWidth, 45, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.y, tt.l.At(tt.x))
		})
	}
}

func TestLinear_MatchesSlopeIntercept(t *testing.T) {
	for _, l := range []Linear{BarThickness, PlateRadius, PlateWidth} {
		for w := 0.0; w <= 60; w += 2.5 {
			assert.InDelta(t, l.Slope()*w+l.Intercept(), l.At(w), 1e-9, "w=%v", w)
		}
	}
	assert.InDelta(t, 8.0/30.0, BarThickness.Slope(), 1e-12)
	assert.InDelta(t, 12.0, BarThickness.Intercept(), 1e-12)
	assert.InDelta(t, 2.5, PlateRadius.Slope(), 1e-12)
	assert.InDelta(t, 87.5, PlateRadius.Intercept(), 1e-12)
}

func TestLinear_Monotonic(t *testing.T) {
	for _, l := range []Linear{BarThickness, PlateRadius, PlateWidth} {
		prev := l.At(0)
		for w := 1.0; w <= 100; w++ {
			cur := l.At(w)
			assert.Greater(t, cur, prev, "w=%v", w)
			prev = cur
		}
	}
}

func TestCollar(t *testing.T) {
	assert.Equal(t, 72.0, CollarThickness(45))
	assert.Equal(t, 36.0, CollarWidth(45))
	assert.Equal(t, 48.0, CollarThickness(15))
	assert.Equal(t, 24.0, CollarWidth(15))
	assert.Equal(t, 76.0, PlateRowStart(45))
}

func TestVisibleBarLength(t *testing.T) {
	assert.Equal(t, BarLength, VisibleBarLength(0))
	assert.Equal(t, BarLength, VisibleBarLength(1000))
	assert.InDelta(t, 270.0, VisibleBarLength(300), 1e-9)
}

func TestScale(t *testing.T) {
	s := DefaultScale
	assert.Equal(t, 11, s.Rows(GraphicHeight))
	assert.Equal(t, 40, s.Cols(BarLength))
	assert.Equal(t, 1, s.Rows(BarThickness.At(45)))
	assert.Equal(t, 4, s.Rows(CollarThickness(45)))
	assert.Equal(t, 10, s.Rows(PlateRadius.At(45)))
	assert.Equal(t, 5, s.Rows(PlateRadius.At(5)))
	assert.Equal(t, 3, s.Cols(PlateWidth.At(5)))
	assert.Equal(t, 5, s.Cols(PlateWidth.At(45)))
	assert.Equal(t, 1, s.Cols(0), "never below one cell")
	assert.Equal(t, 30.0, s.Px(3))
}

func TestCentre(t *testing.T) {
	assert.Equal(t, 5, Centre(11, 1))
	assert.Equal(t, 3, Centre(11, 4))
	assert.Equal(t, 0, Centre(11, 11))
	assert.Equal(t, 0, Centre(3, 10))
}
