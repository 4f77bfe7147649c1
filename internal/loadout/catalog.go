package loadout

import (
	"slices"
	"strconv"
)

// Storage keys and defaults.
const (
	KeyBarWeight     = "barWeight"
	KeyPlates        = "plates"
	DefaultBarWeight = 45.0
)

var (
	// PlateCatalog lists the plates the add row offers, lightest first.
	PlateCatalog = []float64{5, 10, 15, 25, 35, 45}
	// BarCatalog lists the selectable bar weights.
	BarCatalog = []float64{15, 35, 45}
)

// IsCatalogPlate reports whether w is in PlateCatalog.
func IsCatalogPlate(w float64) bool {
	return slices.Contains(PlateCatalog, w)
}

// IsCatalogBar reports whether w is in BarCatalog.
func IsCatalogBar(w float64) bool {
	return slices.Contains(BarCatalog, w)
}

// NextBarWeight steps through BarCatalog by step (+1 or -1), wrapping at
// either end. A weight outside the catalog moves to the first entry.
func NextBarWeight(current float64, step int) float64 {
	i := slices.Index(BarCatalog, current)
	if i < 0 {
		return BarCatalog[0]
	}
	n := len(BarCatalog)
	return BarCatalog[((i+step)%n+n)%n]
}

// FormatWeight prints whole weights without a fractional part.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
