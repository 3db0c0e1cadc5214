package contour_test

import (
	"testing"

	"github.com/katalvlaran/floormap/contour"
	"github.com/katalvlaran/floormap/grid"
)

// BenchmarkTrace measures tracing a 512×512 mask filled with 8×8 pillars
// on a 16-cell pitch.
func BenchmarkTrace(b *testing.B) {
	const n = 512
	m := grid.NewBinary(n, n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x%16 >= 4 && x%16 < 12 && y%16 >= 4 && y%16 < 12 {
				m.Set(x, y, 1)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = contour.Trace(m, contour.DefaultOptions())
	}
}
