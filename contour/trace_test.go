package contour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floormap/contour"
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
)

func mask(t *testing.T, rows ...string) grid.Binary {
	t.Helper()
	g, err := grid.FromRows(0.1, rows...)
	require.NoError(t, err)
	return g.Binary()
}

// TestTrace_Uniform returns nothing for grids without a boundary.
func TestTrace_Uniform(t *testing.T) {
	cases := map[string]grid.Binary{
		"AllFree": mask(t, "....", "....", "...."),
		"AllWall": mask(t, "####", "####", "####"),
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, contour.Trace(m, contour.DefaultOptions()))
		})
	}
}

// TestTrace_Degenerate returns nothing for masks without a 2×2 block.
func TestTrace_Degenerate(t *testing.T) {
	for _, m := range []grid.Binary{
		mask(t, "#"),
		mask(t, "#.#."),
		mask(t, "#", ".", "#"),
		grid.NewBinary(0, 0),
		{Width: 4, Height: 4, Bits: []uint8{1, 0}},
	} {
		assert.Empty(t, contour.Trace(m, contour.DefaultOptions()))
	}
}

// TestTrace_Rectangle traces a 4×4 wall block into one loop on its boundary.
func TestTrace_Rectangle(t *testing.T) {
	m := mask(t,
		"......",
		".####.",
		".####.",
		".####.",
		".####.",
		"......",
	)
	polys := contour.Trace(m, contour.DefaultOptions())
	require.Len(t, polys, 1)

	pl := polys[0]
	assert.Len(t, pl, 16, "one vertex per wall/free edge")
	assert.NotEqual(t, pl[0], pl[len(pl)-1], "loops are not explicitly closed")

	r, ok := pl.Bounds()
	require.True(t, ok)
	assert.Equal(t, geom.Rect{Min: geom.Pt(0.5, 0.5), Max: geom.Pt(4.5, 4.5)}, r)
	outer := geom.Rect{Min: geom.Pt(0, 0), Max: geom.Pt(5, 5)}
	for _, p := range pl {
		assert.True(t, outer.Contains(p), "vertex %v outside rectangle ±1", p)
	}
}

// TestTrace_ExactLoop pins the vertex order on a 2×2 block.
func TestTrace_ExactLoop(t *testing.T) {
	m := mask(t,
		"......",
		"......",
		"..##..",
		"..##..",
		"......",
		"......",
	)
	polys := contour.Trace(m, contour.DefaultOptions())
	require.Len(t, polys, 1)
	want := geom.Polyline{
		geom.Pt(2, 1.5), geom.Pt(1.5, 2), geom.Pt(1.5, 3), geom.Pt(2, 3.5),
		geom.Pt(3, 3.5), geom.Pt(3.5, 3), geom.Pt(3.5, 2), geom.Pt(3, 1.5),
	}
	assert.Equal(t, want, polys[0])
}

// TestTrace_SaddleJoinsDiagonalWalls checks codes 5/10 keep diagonal walls together.
func TestTrace_SaddleJoinsDiagonalWalls(t *testing.T) {
	m := mask(t,
		"....",
		".#..",
		"..#.",
		"....",
	)
	polys := contour.Trace(m, contour.DefaultOptions())
	require.Len(t, polys, 1)
	assert.Len(t, polys[0], 8)

	anti := mask(t,
		"....",
		"..#.",
		".#..",
		"....",
	)
	polys = contour.Trace(anti, contour.DefaultOptions())
	require.Len(t, polys, 1)
	assert.Len(t, polys[0], 8)
}

// TestTrace_OpenAtBorder follows a boundary that runs off the grid.
func TestTrace_OpenAtBorder(t *testing.T) {
	m := mask(t,
		"##..",
		"##..",
		"....",
	)
	polys := contour.Trace(m, contour.DefaultOptions())
	require.Len(t, polys, 1)
	assert.Equal(t, geom.Polyline{
		geom.Pt(1.5, 0), geom.Pt(1.5, 1), geom.Pt(1, 1.5), geom.Pt(0, 1.5),
	}, polys[0])
}

// TestTrace_OpenChainExtendedBackwards starts mid-chain and must still
// return the whole outer boundary of a U opening onto the bottom border.
func TestTrace_OpenChainExtendedBackwards(t *testing.T) {
	m := mask(t,
		".....",
		".###.",
		".#.#.",
		".#.#.",
	)
	polys := contour.Trace(m, contour.DefaultOptions())
	require.Len(t, polys, 2)

	outer, inner := polys[0], polys[1]
	assert.Len(t, outer, 9)
	assert.Len(t, inner, 5)
	assert.Equal(t, 3.0, outer[0].Y)
	assert.Equal(t, 3.0, outer[len(outer)-1].Y)
	assert.ElementsMatch(t, []float64{0.5, 3.5}, []float64{outer[0].X, outer[len(outer)-1].X})
}

// TestTrace_TwoObstacles yields one loop per separated wall block.
func TestTrace_TwoObstacles(t *testing.T) {
	m := mask(t,
		"........",
		".##..##.",
		".##..##.",
		"........",
	)
	polys := contour.Trace(m, contour.DefaultOptions())
	require.Len(t, polys, 2)
	for _, pl := range polys {
		assert.Len(t, pl, 8)
	}
}

// TestTrace_MaxSteps bounds the length of every walk.
func TestTrace_MaxSteps(t *testing.T) {
	m := mask(t,
		"........",
		".######.",
		".######.",
		".######.",
		"........",
	)
	full := contour.Trace(m, contour.DefaultOptions())
	require.Len(t, full, 1)

	capped := contour.Trace(m, contour.Options{MaxSteps: 3})
	require.NotEmpty(t, capped)
	total := 0
	for _, pl := range capped {
		assert.LessOrEqual(t, len(pl), 4)
		total += len(pl)
	}
	assert.LessOrEqual(t, total, len(full[0]))
}

// TestTrace_DoesNotMutateMask guards the purity contract.
func TestTrace_DoesNotMutateMask(t *testing.T) {
	m := mask(t, "....", ".##.", "....")
	before := append([]uint8(nil), m.Bits...)
	_ = contour.Trace(m, contour.DefaultOptions())
	assert.Equal(t, before, m.Bits)
}

// TestDefaultOptions documents the safety valve.
func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, 10000, contour.DefaultOptions().MaxSteps)
}
