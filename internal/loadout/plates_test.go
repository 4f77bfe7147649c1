package loadout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlates_AddAppends(t *testing.T) {
	orig := Plates{10}
	got := orig.Add(20)

	assert.Equal(t, Plates{10, 20}, got)
	assert.Equal(t, Plates{10}, orig, "receiver must not change")
}

func TestPlates_AddDoesNotAlias(t *testing.T) {
	base := make(Plates, 1, 8)
	base[0] = 5
	a := base.Add(10)
	b := base.Add(15)

	assert.Equal(t, Plates{5, 10}, a)
	assert.Equal(t, Plates{5, 15}, b)
}

func TestPlates_Remove(t *testing.T) {
	tests := []struct {
		name  string
		in    Plates
		index int
		want  Plates
	}{
		{"first", Plates{10, 20}, 0, Plates{20}},
		{"last", Plates{10, 20}, 1, Plates{10}},
		{"middle duplicate", Plates{25, 25, 25}, 1, Plates{25, 25}},
		{"out of range", Plates{10, 20}, 5, Plates{10, 20}},
		{"negative", Plates{10, 20}, -1, Plates{10, 20}},
		{"empty", Plates{}, 0, Plates{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append(Plates{}, tt.in...)
			assert.Equal(t, tt.want, tt.in.Remove(tt.index))
			assert.Equal(t, in, tt.in, "receiver must not change")
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 45.0, Total(45, nil))
	assert.Equal(t, 45.0, Total(45, Plates{}))
	assert.Equal(t, 90.0, Total(45, Plates{10, 10, 25}))
	assert.Equal(t, 45.0, Plates{10, 10, 25}.Sum())
}

func TestNextBarWeight(t *testing.T) {
	assert.Equal(t, 35.0, NextBarWeight(15, 1))
	assert.Equal(t, 45.0, NextBarWeight(35, 1))
	assert.Equal(t, 15.0, NextBarWeight(45, 1))
	assert.Equal(t, 45.0, NextBarWeight(15, -1))
	assert.Equal(t, 15.0, NextBarWeight(20, 1), "off-catalog jumps to first")
}

func TestCatalog(t *testing.T) {
	for _, w := range PlateCatalog {
		assert.True(t, IsCatalogPlate(w))
	}
	assert.False(t, IsCatalogPlate(20))
	assert.True(t, IsCatalogBar(35))
	assert.False(t, IsCatalogBar(25))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "45", FormatWeight(45))
	assert.Equal(t, "2.5", FormatWeight(2.5))
	assert.Equal(t, "0", FormatWeight(0))
}
