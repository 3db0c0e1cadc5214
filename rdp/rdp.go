package rdp

import (
	"github.com/katalvlaran/floormap/geom"
)

// DefaultEpsilon is the tolerance used by the contour pipeline, in grid units.
const DefaultEpsilon = 0.8

// span is a pending index range [lo, hi] of the input polyline.
type span struct {
	lo, hi int
}

// Simplify reduces p so that no removed point deviates more than epsilon from
// the retained chain. A negative or NaN epsilon is treated as 0.
// The input is never modified; the result is freshly allocated.
func Simplify(p geom.Polyline, epsilon float64) geom.Polyline {
	if len(p) <= 2 {
		return p.Clone()
	}
	if !(epsilon > 0) {
		epsilon = 0
	}

	keep := make([]bool, len(p))
	keep[0], keep[len(p)-1] = true, true

	stack := []span{{0, len(p) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.hi-s.lo < 2 {
			continue
		}

		a, b := p[s.lo], p[s.hi]
		dmax, idx := 0.0, s.lo
		for i := s.lo + 1; i < s.hi; i++ {
			if d := geom.PerpDistance(p[i], a, b); d > dmax {
				dmax, idx = d, i
			}
		}
		if dmax > epsilon {
			keep[idx] = true
			stack = append(stack, span{idx, s.hi}, span{s.lo, idx})
		}
	}

	out := make(geom.Polyline, 0, len(p))
	for i, k := range keep {
		if k {
			out = append(out, p[i])
		}
	}
	return out
}
