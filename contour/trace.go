package contour

import (
	"github.com/katalvlaran/floormap/geom"
	"github.com/katalvlaran/floormap/grid"
)

// tracer holds the state of one Trace call.
type tracer struct {
	mask     grid.Binary
	maxSteps int
	visited  map[edgeKey]struct{}
}

// Trace extracts boundary polylines from a (closed) wall mask.
// Masks narrower or shorter than 2 cells, or whose bit slice does not match
// the dimensions, yield no contours. The mask is not modified.
func Trace(mask grid.Binary, opts Options) []geom.Polyline {
	if !mask.Valid() || mask.Width < 2 || mask.Height < 2 {
		return nil
	}
	t := &tracer{
		mask:     mask,
		maxSteps: opts.maxSteps(),
		visited:  make(map[edgeKey]struct{}),
	}

	var out []geom.Polyline
	for y := 0; y < mask.Height-1; y++ {
		for x := 0; x < mask.Width-1; x++ {
			code := t.code(x, y)
			if code == 0 || code == 15 {
				continue
			}
			for e := edgeTop; e <= edgeLeft; e++ {
				if exits[code][e] < 0 {
					continue
				}
				if _, seen := t.visited[canon(x, y, e)]; seen {
					continue
				}
				if pl := t.walk(x, y, e); len(pl) > MinVertices {
					out = append(out, pl)
				}
			}
		}
	}
	return out
}

// code returns the 4-bit corner code of block (x,y).
func (t *tracer) code(x, y int) int {
	c := 0
	if t.mask.At(x, y) != 0 {
		c |= 1
	}
	if t.mask.At(x+1, y) != 0 {
		c |= 2
	}
	if t.mask.At(x+1, y+1) != 0 {
		c |= 4
	}
	if t.mask.At(x, y+1) != 0 {
		c |= 8
	}
	return c
}

// inBlocks reports whether (x,y) is a valid block top-left.
func (t *tracer) inBlocks(x, y int) bool {
	return x >= 0 && y >= 0 && x < t.mask.Width-1 && y < t.mask.Height-1
}

// walk traces the boundary through edge start of block (x,y).
func (t *tracer) walk(x, y, start int) geom.Polyline {
	t.visited[canon(x, y, start)] = struct{}{}
	budget := t.maxSteps

	path := geom.Polyline{midpoint(x, y, start)}
	fwd, closed := t.follow(x, y, start, &budget)
	path = append(path, fwd...)
	if closed {
		return path
	}

	// Open chain: pick up the part behind the start edge.
	bx, by := x+edgeStep[start][0], y+edgeStep[start][1]
	if !t.inBlocks(bx, by) {
		return path
	}
	back, _ := t.follow(bx, by, opposite(start), &budget)
	if len(back) == 0 {
		return path
	}
	for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
		back[i], back[j] = back[j], back[i]
	}
	return append(back, path...)
}

// follow walks from block (x,y), entered through edge entry, emitting the
// midpoint of every exit edge. It reports closed=true when it reaches an
// already visited edge, and false when the chain leaves the grid or the
// budget runs out.
func (t *tracer) follow(x, y, entry int, budget *int) (pts geom.Polyline, closed bool) {
	for *budget > 0 {
		exit := int(exits[t.code(x, y)][entry])
		if exit < 0 {
			return pts, false
		}
		key := canon(x, y, exit)
		if _, seen := t.visited[key]; seen {
			return pts, true
		}
		t.visited[key] = struct{}{}
		*budget--

		pts = append(pts, midpoint(x, y, exit))
		x, y = x+edgeStep[exit][0], y+edgeStep[exit][1]
		if !t.inBlocks(x, y) {
			return pts, false
		}
		entry = opposite(exit)
	}
	return pts, false
}

func midpoint(x, y, e int) geom.Point {
	return geom.Pt(float64(x)+edgeMid[e][0], float64(y)+edgeMid[e][1])
}
