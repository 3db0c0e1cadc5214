// Package distfield computes a per-cell distance-to-nearest-wall field over
// an occupancy grid.
//
// What:
//
//   - Build seeds a FIFO queue with every Wall cell at distance 0 and expands
//     over 4-connected Free neighbours, adding Spec.Resolution per step.
//   - The result is hop-count × resolution: grid-taxicab distance, not a
//     Euclidean distance transform.
//   - Free cells no wall can reach (no walls at all) keep the Unreachable
//     sentinel, a NaN.
//
// Why FIFO:
//
//	Every step costs the same, so first-in-first-out order already visits
//	cells in non-decreasing distance and a plain multi-source BFS is exact.
//	A variable per-cell cost would require a priority-queue traversal.
//
// Complexity:
//
//   - Build: O(W×H) time, O(W×H) memory.
package distfield
