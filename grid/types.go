package grid

import (
	"github.com/katalvlaran/floormap/geom"
)

// Cell is the occupancy state of one grid square.
type Cell uint8

const (
	// Free is traversable space.
	Free Cell = iota
	// Wall is an occupied cell.
	Wall
)

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Free:
		return "free"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor step table for c. The returned slice is shared
// and must not be modified.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Spec is the metric metadata of a grid. It is never mutated by the core.
type Spec struct {
	// Resolution is the edge length of one cell in meters.
	Resolution float64
	// Width and Height are cell counts.
	Width, Height int
	// Origin is the world-space (X,Z) position of cell (0,0)'s corner.
	Origin geom.Point
}

// Grid is a Width×Height occupancy grid stored row-major: index(x,y) = y*Width + x.
type Grid struct {
	spec  Spec
	cells []Cell
}

// Binary is a 0/1 wall mask with the same layout as Grid (wall=1, free=0).
type Binary struct {
	Width, Height int
	Bits          []uint8
}
