// Package geom defines the planar point and polyline types shared by the
// contour stages. All coordinates are expressed in grid-cell units; mapping
// them to world meters is left to grid.Spec.
package geom

import (
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D coordinate in grid-cell units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as a gonum r2.Vec.
func (p Point) Vec() r2.Vec {
	return r2.Vec(p)
}

// FromVec converts a gonum r2.Vec back to a Point.
func FromVec(v r2.Vec) Point {
	return Point(v)
}

// Lerp returns the point at parameter t on the segment a→b
// (t=0 yields a, t=1 yields b).
func Lerp(a, b Point, t float64) Point {
	av, bv := a.Vec(), b.Vec()
	return FromVec(r2.Add(r2.Scale(1-t, av), r2.Scale(t, bv)))
}

// PerpDistance returns the distance from p to the infinite line through a and b.
// A zero-length chord (a == b) yields 0 for every p.
// Complexity: O(1).
func PerpDistance(p, a, b Point) float64 {
	ab := r2.Sub(b.Vec(), a.Vec())
	den := r2.Norm(ab)
	if den == 0 {
		return 0
	}
	return math.Abs(r2.Cross(ab, r2.Sub(p.Vec(), a.Vec()))) / den
}

// Polyline is an ordered sequence of points. Closed loops produced by the
// tracer are not explicitly closed: the last point differs from the first.
type Polyline []Point

// Clone returns an independent copy of pl. A nil input yields nil.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}

// Length returns the summed length of all consecutive segments.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += r2.Norm(r2.Sub(pl[i].Vec(), pl[i-1].Vec()))
	}
	return total
}

// Bounds returns the axis-aligned bounding box of pl.
// ok is false for an empty polyline.
func (pl Polyline) Bounds() (r Rect, ok bool) {
	if len(pl) == 0 {
		return Rect{}, false
	}
	r = Rect{Min: pl[0], Max: pl[0]}
	for _, p := range pl[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r, true
}

// Rect is an axis-aligned box in grid-cell units.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width of the box.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height of the box.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// LineString returns pl as an orb.LineString.
func (pl Polyline) LineString() orb.LineString {
	ls := make(orb.LineString, len(pl))
	for i, p := range pl {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

// FromLineString converts an orb.LineString to a Polyline.
func FromLineString(ls orb.LineString) Polyline {
	pl := make(Polyline, len(ls))
	for i, p := range ls {
		pl[i] = Pt(p[0], p[1])
	}
	return pl
}
