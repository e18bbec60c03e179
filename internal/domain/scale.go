package domain

// BandScale maps n discrete values onto equal-width contiguous slots of a
// continuous range, with no padding. A reversed range (r0 > r1) assigns the
// first value to the slot nearest r0.
type BandScale struct {
	n      int
	start  float64
	step   float64
	revert bool
}

// NewBandScale creates a band scale for n values over [r0, r1].
func NewBandScale(n int, r0, r1 float64) BandScale {
	lo, hi, rev := r0, r1, false
	if r1 < r0 {
		lo, hi, rev = r1, r0, true
	}
	step := hi - lo
	if n > 0 {
		step /= float64(n)
	}
	return BandScale{n: n, start: lo, step: step, revert: rev}
}

// Bandwidth is the width of every slot.
func (s BandScale) Bandwidth() float64 { return s.step }

// Position returns the start coordinate of slot i.
func (s BandScale) Position(i int) float64 {
	if s.revert {
		i = s.n - 1 - i
	}
	return s.start + s.step*float64(i)
}

// Center returns the midpoint of slot i, where axis ticks are drawn.
func (s BandScale) Center(i int) float64 {
	return s.Position(i) + s.step/2
}

// LinearScale maps [d0, d1] onto [r0, r1].
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinearScale creates a linear scale.
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Map converts a domain value to a range coordinate. A degenerate domain
// maps everything to the middle of the range.
func (s LinearScale) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}
