// Package loadout models what is on the bar: the bar weight, the plates on
// one side, and the total.
package loadout

// Plates is the ordered list of plates on the bar, innermost first.
// Methods never modify the receiver.
type Plates []float64

// Add returns a new list with w appended.
func (p Plates) Add(w float64) Plates {
	out := make(Plates, len(p), len(p)+1)
	copy(out, p)
	return append(out, w)
}

// Remove returns a new list without the plate at index i. An out-of-range
// index returns an unchanged copy.
func (p Plates) Remove(i int) Plates {
	out := make(Plates, 0, len(p))
	for j, w := range p {
		if j != i {
			out = append(out, w)
		}
	}
	return out
}

// Sum returns the weight of all plates.
func (p Plates) Sum() float64 {
	var s float64
	for _, w := range p {
		s += w
	}
	return s
}

// Total folds plates onto the bar weight.
func Total(barWeight float64, plates Plates) float64 {
	total := barWeight
	for _, w := range plates {
		total += w
	}
	return total
}
