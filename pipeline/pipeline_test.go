package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/floormap/chaikin"
	"github.com/katalvlaran/floormap/distfield"
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/pipeline"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockGrid is a 6×6 grid with a 4×4 wall block at cells 1..4.
func blockGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(0.1,
		"......",
		".####.",
		".####.",
		".####.",
		".####.",
		"......",
	)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Contours
//----------------------------------------------------------------------------//

// TestContours_Block runs the full chain on a single obstacle.
func TestContours_Block(t *testing.T) {
	g := blockGrid(t)
	out, err := pipeline.Contours(g)
	require.NoError(t, err)
	require.Len(t, out, 1)

	r, ok := out[0].Bounds()
	require.True(t, ok)
	bbox := geom.Rect{Min: geom.Pt(1, 1), Max: geom.Pt(5, 5)}
	assert.True(t, bbox.Contains(r.Min), "min %v outside %v", r.Min, bbox)
	assert.True(t, bbox.Contains(r.Max), "max %v outside %v", r.Max, bbox)
}

// TestRun_StagesAligned checks the intermediate products and their sizes.
func TestRun_StagesAligned(t *testing.T) {
	st, err := pipeline.Run(blockGrid(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"......",
		"......",
		"..##..",
		"..##..",
		"......",
		"......",
	}, st.Closed.Rows())
	require.Len(t, st.Raw, 1)
	require.Len(t, st.Simplified, 1)
	require.Len(t, st.Smoothed, 1)

	assert.Len(t, st.Raw[0], 8)
	assert.Len(t, st.Simplified[0], 4)
	assert.Len(t, st.Smoothed[0], chaikin.Len(4, 2))
}

// TestContours_Empty covers grids that cannot produce a boundary.
func TestContours_Empty(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"OneRow", []string{"#.#.#"}},
		{"OneColumn", []string{"#", ".", "#"}},
		{"AllFree", []string{"....", "....", "...."}},
		{"AllWall", []string{"###", "###", "###"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.FromRows(0.05, tc.rows...)
			require.NoError(t, err)
			out, err := pipeline.Contours(g)
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

// TestContours_NoSmoothing returns the simplified paths unchanged.
func TestContours_NoSmoothing(t *testing.T) {
	g := blockGrid(t)
	st, err := pipeline.Run(g, pipeline.WithIterations(0))
	require.NoError(t, err)
	assert.Equal(t, st.Simplified, st.Smoothed)
}

// TestContours_DoesNotMutate ensures the input grid is left untouched.
func TestContours_DoesNotMutate(t *testing.T) {
	g := blockGrid(t)
	before := g.Cells()
	_, err := pipeline.Contours(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.Cells())
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

// TestContours_Errors verifies nil grids and invalid options.
func TestContours_Errors(t *testing.T) {
	_, err := pipeline.Contours(nil)
	assert.ErrorIs(t, err, pipeline.ErrGridNil)

	g := blockGrid(t)
	for name, opt := range map[string]pipeline.Option{
		"NegativeEpsilon":   pipeline.WithEpsilon(-1),
		"NegativeIteration": pipeline.WithIterations(-2),
		"ZeroMaxSteps":      pipeline.WithMaxSteps(0),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := pipeline.Contours(g, opt)
			if !errors.Is(err, pipeline.ErrOptionViolation) {
				t.Errorf("error = %v; want ErrOptionViolation", err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Derive
//----------------------------------------------------------------------------//

// TestDerive_Both checks that both artifacts are produced from one snapshot.
func TestDerive_Both(t *testing.T) {
	g := blockGrid(t)
	res, err := pipeline.Derive(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, res.Contours, 1)
	require.NotNil(t, res.Field)
	require.NoError(t, res.Field.Validate())

	v, ok := res.Field.At(2, 2)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
	assert.InDelta(t, 0.2, res.Field.Meters[0], 1e-12)
	assert.Zero(t, res.Field.Stats().Unreachable)

	want := distfield.Build(g)
	assert.Equal(t, want.Meters, res.Field.Meters)
}

// TestDerive_Errors covers nil input, bad options and a cancelled context.
func TestDerive_Errors(t *testing.T) {
	_, err := pipeline.Derive(context.Background(), nil)
	assert.ErrorIs(t, err, pipeline.ErrGridNil)

	_, err = pipeline.Derive(context.Background(), blockGrid(t), pipeline.WithEpsilon(-0.1))
	assert.ErrorIs(t, err, pipeline.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Derive(ctx, blockGrid(t))
	assert.ErrorIs(t, err, context.Canceled)
}
