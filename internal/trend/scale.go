package trend

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scale maps a value interval onto a run of character cells.
type Scale struct {
	Lo, Hi float64
	Cells  int
}

// Index returns the cell for v in [0, Cells). Values outside the interval
// are pinned to the edge cells.
func (s Scale) Index(v float64) int {
	if s.Cells <= 1 || s.Hi <= s.Lo {
		return 0
	}
	i := int(math.Round((v - s.Lo) / (s.Hi - s.Lo) * float64(s.Cells-1)))
	if i < 0 {
		return 0
	}
	if i >= s.Cells {
		return s.Cells - 1
	}
	return i
}

// Value returns the value at the centre of cell i, the inverse of Index.
func (s Scale) Value(i int) float64 {
	if s.Cells <= 1 {
		return s.Lo
	}
	return s.Lo + float64(i)/float64(s.Cells-1)*(s.Hi-s.Lo)
}

// YRange returns a padded value interval covering both series of samples.
// Flat data is widened to at least minSpan.
func YRange(samples []Sample, minSpan float64) (lo, hi float64) {
	if len(samples) == 0 {
		return 0, 20
	}
	vals := append(Pressures(samples), Currents(samples)...)
	lo, hi = floats.Min(vals), floats.Max(vals)

	if hi-lo < minSpan {
		mid := (hi + lo) / 2
		lo, hi = mid-minSpan/2, mid+minSpan/2
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}
