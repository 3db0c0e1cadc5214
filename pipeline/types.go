package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/floormap/chaikin"
	"github.com/katalvlaran/floormap/contour"
	"github.com/katalvlaran/floormap/distfield"
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/rdp"
)

// Sentinel errors for pipeline execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pipeline: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")
)

// Option configures the contour chain via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of the contour chain.
type Options struct {
	// Epsilon is the RDP tolerance in grid units.
	Epsilon float64
	// Iterations is the number of Chaikin passes.
	Iterations int
	// Trace configures the boundary walk.
	Trace contour.Options

	err error
}

// DefaultOptions returns epsilon 0.8, two smoothing passes and the default
// tracer step cap.
func DefaultOptions() Options {
	return Options{
		Epsilon:    rdp.DefaultEpsilon,
		Iterations: chaikin.DefaultIterations,
		Trace:      contour.DefaultOptions(),
	}
}

// WithEpsilon sets the RDP tolerance. Negative or NaN values are rejected.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			o.err = fmt.Errorf("%w: epsilon must be ≥ 0 (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithIterations sets the number of smoothing passes; 0 disables smoothing.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithMaxSteps sets the tracer's per-walk step cap.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max steps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Trace.MaxSteps = n
	}
}

func gather(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Stages exposes every intermediate product of one Run.
type Stages struct {
	// Closed is the wall mask after morphological closing.
	Closed grid.Binary
	// Raw holds the traced boundaries.
	Raw []geom.Polyline
	// Simplified is Raw after RDP, index-aligned.
	Simplified []geom.Polyline
	// Smoothed is Simplified after Chaikin, index-aligned. This is the
	// pipeline output.
	Smoothed []geom.Polyline
}

// Result bundles both derived artifacts of one grid snapshot.
type Result struct {
	Contours []geom.Polyline
	Field    *distfield.Field
}
