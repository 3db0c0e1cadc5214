// Package morph implements binary morphology on grid.Binary wall masks.
//
// Close (dilate, then erode) with a 3×3 Moore structuring element fills
// single-cell gaps in rasterized walls so the contour tracer does not leak
// through them. It must run before tracing, never after.
//
// Edge rule: only interior cells (x in [1,w-2], y in [1,h-2]) are
// recomputed; the one-cell border is copied through unchanged from the input
// of each pass. As a consequence a wall block touching a free border is
// eroded back from that side and closing is not extensive at the edges.
//
// Complexity: O(W×H×9) time, O(W×H) memory per pass. Inputs are never mutated.
package morph
