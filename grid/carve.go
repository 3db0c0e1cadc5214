package grid

import (
	"math"

	"github.com/katalvlaran/floormap/geom"
)

// StampLine writes v into every cell within radius cells of the Bresenham
// line from cell (x0,y0) to cell (x1,y1). Cells outside the grid are skipped
// by SetCell, so the stamp may hang over the edges freely.
// Complexity: O(L·r²) for a line of L cells.
func (g *Grid) StampLine(x0, y0, x1, y1, radius int, v Cell) {
	if radius < 0 {
		radius = 0
	}
	dx, sx := absInt(x1-x0), sign(x1-x0)
	dy, sy := -absInt(y1-y0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0
	for {
		for oy := -radius; oy <= radius; oy++ {
			for ox := -radius; ox <= radius; ox++ {
				if ox*ox+oy*oy <= radius*radius {
					g.SetCell(x+ox, y+oy, v)
				}
			}
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// CarveCorridor frees a passage of the given width (meters) between two
// world-space points, as done when a doorway is placed across a wall.
// The stamp radius is width/resolution rounded, at least one cell.
func (g *Grid) CarveCorridor(a, b geom.Point, width float64) {
	ax, ay := g.WorldToCell(a)
	bx, by := g.WorldToCell(b)
	r := int(math.Round(width / g.spec.Resolution))
	if r < 1 {
		r = 1
	}
	g.StampLine(ax, ay, bx, by, r, Free)
}

// MarkWall sets the cell containing world position w to Wall.
// It reports whether a cell changed; positions off the grid report false.
func (g *Grid) MarkWall(w geom.Point) bool {
	x, y := g.WorldToCell(w)
	c, ok := g.CellAt(x, y)
	if !ok || c == Wall {
		return false
	}
	g.SetCell(x, y, Wall)
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
