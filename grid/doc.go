// Package grid holds the occupancy grid that every other floormap stage reads.
//
// What:
//
//   - Grid wraps a flat, row-major []Cell of Width×Height Free/Wall cells.
//   - Spec carries the metric metadata: resolution (meters per cell),
//     dimensions and the world-space origin of cell (0,0)'s corner.
//   - CellAt / SetCell are bounds-checked; out-of-range writes are dropped
//     without error so rasterizers can round freely at the grid edges.
//   - Binary projects the grid to a 0/1 wall mask for morphology and tracing.
//   - Regions finds connected components of a given cell kind (Conn4 or Conn8).
//
// Complexity:
//
//   - CellAt, SetCell, InBounds: O(1).
//   - Binary, Clone:             O(W×H).
//   - Regions:                   O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//
// Errors:
//
//   - ErrBadDimensions:  width or height is not positive.
//   - ErrBadResolution:  resolution is not a finite positive number.
//   - ErrLengthMismatch: cell slice length differs from width×height.
package grid
