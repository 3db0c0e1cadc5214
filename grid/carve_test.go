package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
)

// TestStampLine_Thin draws a one-cell diagonal.
func TestStampLine_Thin(t *testing.T) {
	g, err := grid.NewGrid(grid.Spec{Resolution: 1, Width: 4, Height: 4})
	require.NoError(t, err)
	g.StampLine(0, 0, 3, 3, 0, grid.Wall)
	assert.Equal(t, []string{
		"#...",
		".#..",
		"..#.",
		"...#",
	}, g.Rows())
}

// TestStampLine_OverhangsEdges stamps a disk partly outside the grid
// without faulting.
func TestStampLine_OverhangsEdges(t *testing.T) {
	g, err := grid.NewGrid(grid.Spec{Resolution: 1, Width: 3, Height: 3})
	require.NoError(t, err)
	require.NotPanics(t, func() {
		g.StampLine(-1, 0, -1, 2, 1, grid.Wall)
	})
	assert.Equal(t, []string{
		"#..",
		"#..",
		"#..",
	}, g.Rows())
}

// TestCarveCorridor opens a doorway through a wall.
func TestCarveCorridor(t *testing.T) {
	g, err := grid.FromRows(1,
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	)
	require.NoError(t, err)
	g.CarveCorridor(geom.Pt(1.5, 2.5), geom.Pt(3.5, 2.5), 0.4)
	assert.Equal(t, []string{
		"..#..",
		".....",
		".....",
		".....",
		"..#..",
	}, g.Rows())
	assert.Len(t, g.Regions(grid.Free, grid.Conn4), 1)
}

// TestMarkWall reports only real changes.
func TestMarkWall(t *testing.T) {
	g, err := grid.NewGrid(grid.Spec{Resolution: 0.5, Width: 4, Height: 4})
	require.NoError(t, err)
	assert.True(t, g.MarkWall(geom.Pt(0.6, 0.1)))
	assert.False(t, g.MarkWall(geom.Pt(0.7, 0.2)), "same cell again")
	assert.False(t, g.MarkWall(geom.Pt(-3, 0)), "off grid")
	c, _ := g.CellAt(1, 0)
	assert.Equal(t, grid.Wall, c)
}
