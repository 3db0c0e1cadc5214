package morph

import (
	"github.com/katalvlaran/floormap/grid"
)

// moore is the 3×3 structuring element, centre included.
var moore = [9][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Dilate sets each interior cell to 1 if any of its 9 neighbours is 1.
func Dilate(src grid.Binary) grid.Binary {
	return apply(src, func(hits int) bool { return hits > 0 })
}

// Erode sets each interior cell to 1 only if all 9 neighbours are 1.
func Erode(src grid.Binary) grid.Binary {
	return apply(src, func(hits int) bool { return hits == len(moore) })
}

// Close runs Dilate then Erode.
func Close(src grid.Binary) grid.Binary {
	return Erode(Dilate(src))
}

// CloseGrid projects g to its wall mask and closes it.
func CloseGrid(g *grid.Grid) grid.Binary {
	return Close(g.Binary())
}

// apply recomputes every interior cell from the count of set neighbours.
// Masks narrower or shorter than 3 cells have no interior and are copied.
func apply(src grid.Binary, set func(hits int) bool) grid.Binary {
	out := src.Clone()
	if !src.Valid() {
		return out
	}
	w, h := src.Width, src.Height
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			hits := 0
			for _, d := range moore {
				if src.Bits[(y+d[1])*w+x+d[0]] != 0 {
					hits++
				}
			}
			if set(hits) {
				out.Bits[y*w+x] = 1
			} else {
				out.Bits[y*w+x] = 0
			}
		}
	}
	return out
}
