package contour

// DefaultMaxSteps bounds the number of edges visited by one walk.
const DefaultMaxSteps = 10000

// MinVertices is the exclusive lower bound on emitted polyline length:
// walks that produce MinVertices or fewer points are discarded.
const MinVertices = 2

// Options configures tracing.
type Options struct {
	// MaxSteps caps the edges visited by a single walk. Values ≤ 0 select
	// DefaultMaxSteps.
	MaxSteps int
}

// DefaultOptions returns Options with MaxSteps = DefaultMaxSteps.
func DefaultOptions() Options {
	return Options{MaxSteps: DefaultMaxSteps}
}

func (o Options) maxSteps() int {
	if o.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return o.MaxSteps
}

// Edge indices within a 2×2 block.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// edgeStep is the block offset reached by leaving through each edge.
var edgeStep = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// edgeMid is the midpoint of each edge relative to the block's top-left cell.
var edgeMid = [4][2]float64{{0.5, 0.0}, {1.0, 0.5}, {0.5, 1.0}, {0.0, 0.5}}

// exits[code][entry] is the edge paired with entry in a block of that code,
// or -1 when entry is not crossed.
var exits = [16][4]int8{
	{-1, -1, -1, -1}, // 0
	{3, -1, -1, 0},   // 1  TL
	{1, 0, -1, -1},   // 2  TR
	{-1, 3, -1, 1},   // 3  TL TR
	{-1, 2, 1, -1},   // 4  BR
	{1, 0, 3, 2},     // 5  TL BR (saddle, walls joined)
	{2, -1, 0, -1},   // 6  TR BR
	{-1, -1, 3, 2},   // 7  TL TR BR
	{-1, -1, 3, 2},   // 8  BL
	{2, -1, 0, -1},   // 9  TL BL
	{3, 2, 1, 0},     // 10 TR BL (saddle, walls joined)
	{-1, 2, 1, -1},   // 11 TL TR BL
	{-1, 3, -1, 1},   // 12 BR BL
	{1, 0, -1, -1},   // 13 TL BR BL
	{3, -1, -1, 0},   // 14 TR BR BL
	{-1, -1, -1, -1}, // 15
}

// edgeKey identifies one physical edge: (block x, block y, edge index) with
// bottom and right edges folded onto the neighbour's top and left.
type edgeKey struct {
	x, y, e int
}

func canon(x, y, e int) edgeKey {
	switch e {
	case edgeBottom:
		return edgeKey{x, y + 1, edgeTop}
	case edgeRight:
		return edgeKey{x + 1, y, edgeLeft}
	default:
		return edgeKey{x, y, e}
	}
}

func opposite(e int) int {
	return (e + 2) % 4
}
