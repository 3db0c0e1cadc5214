package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floormap/grid"
	"github.com/katalvlaran/floormap/morph"
)

// mask builds a wall mask from a FromRows picture.
func mask(t *testing.T, rows ...string) grid.Binary {
	t.Helper()
	g, err := grid.FromRows(0.1, rows...)
	require.NoError(t, err)
	return g.Binary()
}

// TestDilate_SinglePixel grows one interior wall into a 3×3 block.
func TestDilate_SinglePixel(t *testing.T) {
	src := mask(t,
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)
	got := morph.Dilate(src)
	assert.Equal(t, []string{
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	}, got.Rows())
}

// TestDilate_BorderCopiedThrough verifies border cells are never recomputed,
// while interior cells still see border neighbours.
func TestDilate_BorderCopiedThrough(t *testing.T) {
	src := mask(t,
		"#....",
		".....",
		".....",
	)
	got := morph.Dilate(src)
	assert.Equal(t, []string{
		"#....",
		".#...",
		".....",
	}, got.Rows())
}

// TestErode_RequiresFullNeighbourhood keeps only cells whose 9 neighbours are walls.
func TestErode_RequiresFullNeighbourhood(t *testing.T) {
	src := mask(t,
		"#####",
		"#####",
		"#####",
		"####.",
	)
	got := morph.Erode(src)
	assert.Equal(t, []string{
		"#####",
		"#####",
		"###.#",
		"####.",
	}, got.Rows())
}

// TestClose_FillsSingleCellGap bridges a one-cell hole in a wall run.
func TestClose_FillsSingleCellGap(t *testing.T) {
	src := mask(t,
		".......",
		".......",
		".##.##.",
		".......",
		".......",
	)
	got := morph.Close(src)
	assert.Equal(t, uint8(1), got.At(3, 2), "gap should be closed")
	assert.Equal(t, []string{
		".......",
		".......",
		"..###..",
		".......",
		".......",
	}, got.Rows())
}

// TestClose_Idempotent checks close(close(g)) == close(g) on gap-free input.
func TestClose_Idempotent(t *testing.T) {
	cases := map[string]grid.Binary{
		"AllFree": mask(t, "....", "....", "...."),
		"AllWall": mask(t, "####", "####", "####"),
		"Block": mask(t,
			"......",
			".####.",
			".####.",
			".####.",
			".####.",
			"......",
		),
		"Bridge": mask(t,
			".......",
			".......",
			".##.##.",
			".......",
			".......",
		),
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			once := morph.Close(src)
			twice := morph.Close(once)
			assert.Equal(t, once.Rows(), twice.Rows())
		})
	}
}

// TestClose_BlockAgainstFreeBorder documents that erosion eats into a block
// whose dilation was clipped by the copied-through border.
func TestClose_BlockAgainstFreeBorder(t *testing.T) {
	src := mask(t,
		"......",
		".####.",
		".####.",
		".####.",
		".####.",
		"......",
	)
	assert.Equal(t, []string{
		"......",
		"......",
		"..##..",
		"..##..",
		"......",
		"......",
	}, morph.Close(src).Rows())
}

// TestDoesNotMutateInput guards the purity contract.
func TestDoesNotMutateInput(t *testing.T) {
	src := mask(t, ".....", ".#.#.", ".....")
	before := append([]uint8(nil), src.Bits...)
	_ = morph.Close(src)
	_ = morph.Dilate(src)
	_ = morph.Erode(src)
	assert.Equal(t, before, src.Bits)
}

// TestDegenerateMasks returns copies for masks without an interior.
func TestDegenerateMasks(t *testing.T) {
	for _, src := range []grid.Binary{
		mask(t, "#"),
		mask(t, "#.", ".#"),
		mask(t, "#.#"),
		grid.NewBinary(0, 0),
		{Width: 3, Height: 3, Bits: []uint8{1}},
	} {
		got := morph.Close(src)
		assert.Equal(t, src.Bits, got.Bits)
	}
}

// TestCloseGrid matches Close over the grid's wall mask.
func TestCloseGrid(t *testing.T) {
	g, err := grid.FromRows(0.1, ".....", ".#.#.", ".....")
	require.NoError(t, err)
	assert.Equal(t, morph.Close(g.Binary()).Bits, morph.CloseGrid(g).Bits)
}
