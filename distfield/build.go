package distfield

import (
	"github.com/katalvlaran/floormap/grid"
)

// walker holds the mutable state of one Build call.
type walker struct {
	g     *grid.Grid
	step  float64
	field *Field
	queue []int
}

// Build computes the distance-to-nearest-wall field of g. The grid is only
// read; the returned field is freshly allocated. A grid without walls yields
// a field of Unreachable sentinels.
func Build(g *grid.Grid) *Field {
	spec := g.Spec()
	n := spec.Width * spec.Height
	w := &walker{
		g:    g,
		step: spec.Resolution,
		field: &Field{
			Width:  spec.Width,
			Height: spec.Height,
			Meters: make([]float64, n),
		},
		queue: make([]int, 0, n),
	}
	w.seed()
	w.loop()
	return w.field
}

// seed marks every wall at 0 and everything else unreached.
func (w *walker) seed() {
	for i := range w.field.Meters {
		x, y := w.g.Coordinate(i)
		if c, _ := w.g.CellAt(x, y); c == grid.Wall {
			w.field.Meters[i] = 0
			w.queue = append(w.queue, i)
			continue
		}
		w.field.Meters[i] = Unreachable()
	}
}

// loop drains the queue in FIFO order.
func (w *walker) loop() {
	width := w.field.Width
	offsets := grid.Conn4.Offsets()
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		ux, uy := u%width, u/width
		cand := w.field.Meters[u] + w.step
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			c, ok := w.g.CellAt(vx, vy)
			if !ok || c != grid.Free {
				continue
			}
			v := vy*width + vx
			// NaN compares false, so unreached cells always take the candidate.
			if w.field.Meters[v] <= cand {
				continue
			}
			w.field.Meters[v] = cand
			w.queue = append(w.queue, v)
		}
	}
}
