package pipeline

import (
	"github.com/katalvlaran/floormap/chaikin"
	"github.com/katalvlaran/floormap/contour"
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/morph"
	"github.com/katalvlaran/floormap/rdp"
)

// Contours returns the smoothed wall contours of g in grid-cell units.
// Grids narrower or shorter than 2 cells yield no contours.
func Contours(g *grid.Grid, opts ...Option) ([]geom.Polyline, error) {
	st, err := Run(g, opts...)
	if err != nil {
		return nil, err
	}
	return st.Smoothed, nil
}

// Run executes the contour chain and keeps every intermediate stage.
func Run(g *grid.Grid, opts ...Option) (*Stages, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}

	st := &Stages{}
	if g.Width() < 2 || g.Height() < 2 {
		st.Closed = g.Binary()
		return st, nil
	}
	st.Closed = morph.CloseGrid(g)
	st.Raw = contour.Trace(st.Closed, o.Trace)
	st.Simplified = make([]geom.Polyline, len(st.Raw))
	st.Smoothed = make([]geom.Polyline, len(st.Raw))
	for i, raw := range st.Raw {
		st.Simplified[i] = rdp.Simplify(raw, o.Epsilon)
		st.Smoothed[i] = chaikin.Smooth(st.Simplified[i], o.Iterations)
	}
	return st, nil
}
