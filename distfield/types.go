package distfield

import (
	"errors"
	"math"
)

// ErrShapeMismatch indicates Meters does not hold Width×Height values.
var ErrShapeMismatch = errors.New("distfield: meters length does not match width×height")

// Unreachable returns the sentinel stored in cells no wall can reach.
func Unreachable() float64 {
	return math.NaN()
}

// IsUnreachable reports whether v is the Unreachable sentinel.
func IsUnreachable(v float64) bool {
	return math.IsNaN(v)
}

// Field is a row-major grid of distances in meters, same shape as its source
// grid. Wall cells hold exactly 0.
type Field struct {
	Width, Height int
	Meters        []float64
}

// Validate checks that Meters matches the declared shape.
func (f *Field) Validate() error {
	if f.Width <= 0 || f.Height <= 0 || len(f.Meters) != f.Width*f.Height {
		return ErrShapeMismatch
	}
	return nil
}

// At returns the distance stored for (x,y). ok is false outside the field.
func (f *Field) At(x, y int) (meters float64, ok bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Unreachable(), false
	}
	return f.Meters[y*f.Width+x], true
}

// Reachable reports whether (x,y) is inside the field and not the sentinel.
func (f *Field) Reachable(x, y int) bool {
	v, ok := f.At(x, y)
	return ok && !IsUnreachable(v)
}

// Stats summarizes a field.
type Stats struct {
	// Reachable counts cells holding a finite distance (walls included).
	Reachable int
	// Unreachable counts sentinel cells.
	Unreachable int
	// Max is the largest finite distance, 0 for an all-sentinel field.
	Max float64
}

// Stats scans the field once.
func (f *Field) Stats() Stats {
	var s Stats
	for _, v := range f.Meters {
		if IsUnreachable(v) {
			s.Unreachable++
			continue
		}
		s.Reachable++
		if v > s.Max && !math.IsInf(v, 1) {
			s.Max = v
		}
	}
	return s
}
