package chaikin

import (
	"github.com/katalvlaran/floormap/geom"
)

// DefaultIterations is the number of passes used by the contour pipeline.
const DefaultIterations = 2

// Smooth applies iterations passes of corner cutting to p.
// Polylines with fewer than 3 points, and iterations ≤ 0, yield a copy of p.
func Smooth(p geom.Polyline, iterations int) geom.Polyline {
	if len(p) < 3 || iterations <= 0 {
		return p.Clone()
	}
	out := p
	for it := 0; it < iterations; it++ {
		next := make(geom.Polyline, 0, 2*(len(out)-1))
		for i := 0; i+1 < len(out); i++ {
			a, b := out[i], out[i+1]
			next = append(next, geom.Lerp(a, b, 0.25), geom.Lerp(a, b, 0.75))
		}
		out = next
	}
	return out
}

// Len returns the length of Smooth(p, iterations) for a p of n points
// without computing it.
func Len(n, iterations int) int {
	if n < 3 || iterations <= 0 {
		return n
	}
	for it := 0; it < iterations; it++ {
		n = 2 * (n - 1)
	}
	return n
}
