package grid

// Regions finds all contiguous regions of cells equal to target under conn.
// Returns a slice of regions; each region is a slice of cell indices
// (row-major) in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(target Cell, conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int
	offsets := conn.Offsets()

	for y := 0; y < g.spec.Height; y++ {
		for x := 0; x < g.spec.Width; x++ {
			i0 := g.index(x, y)
			if g.cells[i0] != target || seen[i0] {
				continue
			}
			// BFS to collect region
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) {
						continue
					}
					vi := g.index(vx, vy)
					if !seen[vi] && g.cells[vi] == target {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// TouchesBorder reports whether any cell of region lies on the outer ring of
// the grid. Free regions that do not touch the border are enclosed pockets.
func (g *Grid) TouchesBorder(region []int) bool {
	for _, idx := range region {
		x, y := g.Coordinate(idx)
		if x == 0 || y == 0 || x == g.spec.Width-1 || y == g.spec.Height-1 {
			return true
		}
	}
	return false
}
