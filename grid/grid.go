package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/floormap/geom"
)

// Validate checks that s describes a usable grid.
// Returns ErrBadResolution or ErrBadDimensions.
func (s Spec) Validate() error {
	if !(s.Resolution > 0) || math.IsInf(s.Resolution, 1) {
		return fmt.Errorf("%w: got %v", ErrBadResolution, s.Resolution)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %d×%d", ErrBadDimensions, s.Width, s.Height)
	}
	return nil
}

// NewGrid allocates an all-Free grid for spec.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(spec Spec) (*Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Grid{spec: spec, cells: make([]Cell, spec.Width*spec.Height)}, nil
}

// FromCells builds a grid from a row-major cell slice. The slice is copied so
// later caller mutation does not leak into the grid.
// Returns ErrLengthMismatch if len(cells) != Width×Height.
func FromCells(spec Spec, cells []Cell) (*Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(cells) != spec.Width*spec.Height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(cells), spec.Width*spec.Height)
	}
	cp := make([]Cell, len(cells))
	copy(cp, cells)
	return &Grid{spec: spec, cells: cp}, nil
}

// Spec returns the grid metadata.
func (g *Grid) Spec() Spec { return g.spec }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.spec.Width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.spec.Height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.spec.Width && y >= 0 && y < g.spec.Height
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.spec.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.spec.Width, idx / g.spec.Width
}

// CellAt returns the cell at (x,y). ok is false outside the grid.
func (g *Grid) CellAt(x, y int) (c Cell, ok bool) {
	if !g.InBounds(x, y) {
		return Free, false
	}
	return g.cells[g.index(x, y)], true
}

// SetCell writes v at (x,y). Writes outside the grid are silently dropped.
func (g *Grid) SetCell(x, y int, v Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = v
}

// Cells returns a row-major copy of the cell data.
func (g *Grid) Cells() []Cell {
	cp := make([]Cell, len(g.cells))
	copy(cp, g.cells)
	return cp
}

// Clone returns a deep copy suitable as an immutable snapshot.
func (g *Grid) Clone() *Grid {
	return &Grid{spec: g.spec, cells: g.Cells()}
}

// WallCount returns the number of Wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Wall {
			n++
		}
	}
	return n
}

// Binary projects the grid to a wall mask: Wall→1, anything else→0.
// Complexity: O(W×H).
func (g *Grid) Binary() Binary {
	bits := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		if c == Wall {
			bits[i] = 1
		}
	}
	return Binary{Width: g.spec.Width, Height: g.spec.Height, Bits: bits}
}

// PointToWorld maps a grid-unit point (integer coordinates at cell centers)
// to world-space meters.
func (g *Grid) PointToWorld(p geom.Point) geom.Point {
	r := g.spec.Resolution
	return geom.Pt(g.spec.Origin.X+(p.X+0.5)*r, g.spec.Origin.Y+(p.Y+0.5)*r)
}

// WorldToCell returns the cell containing world position w. The result may be
// out of range; pass it to SetCell, which drops such writes.
func (g *Grid) WorldToCell(w geom.Point) (x, y int) {
	r := g.spec.Resolution
	return int(math.Floor((w.X - g.spec.Origin.X) / r)), int(math.Floor((w.Y - g.spec.Origin.Y) / r))
}

// NewBinary allocates an all-zero mask.
func NewBinary(w, h int) Binary {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return Binary{Width: w, Height: h, Bits: make([]uint8, w*h)}
}

// At returns the bit at (x,y), or 0 outside the mask.
func (b Binary) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Bits[y*b.Width+x]
}

// Set writes v at (x,y); out-of-range writes are dropped.
func (b Binary) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Bits[y*b.Width+x] = v
}

// Clone returns a deep copy of b.
func (b Binary) Clone() Binary {
	bits := make([]uint8, len(b.Bits))
	copy(bits, b.Bits)
	return Binary{Width: b.Width, Height: b.Height, Bits: bits}
}

// Valid reports whether the bit slice matches the declared dimensions.
func (b Binary) Valid() bool {
	return b.Width >= 0 && b.Height >= 0 && len(b.Bits) == b.Width*b.Height
}
