package grid

import (
	"fmt"
	"strings"
)

// FromRows builds a grid from an ASCII picture, one string per row:
// '#' is Wall, '.' is Free. All rows must share one length.
// The origin is (0,0). Intended for fixtures, examples and small tools.
func FromRows(resolution float64, rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty picture", ErrBadDimensions)
	}
	w := len(rows[0])
	spec := Spec{Resolution: resolution, Width: w, Height: len(rows)}
	g, err := NewGrid(spec)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLengthMismatch, y, len(row), w)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				g.SetCell(x, y, Wall)
			case '.':
			default:
				return nil, fmt.Errorf("grid: row %d col %d: unexpected %q", y, x, ch)
			}
		}
	}
	return g, nil
}

// Rows renders g back to the FromRows picture format.
func (g *Grid) Rows() []string {
	out := make([]string, g.spec.Height)
	var sb strings.Builder
	for y := 0; y < g.spec.Height; y++ {
		sb.Reset()
		for x := 0; x < g.spec.Width; x++ {
			if g.cells[g.index(x, y)] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[y] = sb.String()
	}
	return out
}

// Rows renders the mask in the FromRows picture format ('#' for 1).
func (b Binary) Rows() []string {
	out := make([]string, b.Height)
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		sb.Reset()
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[y] = sb.String()
	}
	return out
}
