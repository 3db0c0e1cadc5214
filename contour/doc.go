// Package contour traces wall boundaries in a binary occupancy mask.
//
// What:
//
//   - Trace walks every 2×2 block of a grid.Binary (top-left (x,y) with
//     x in [0,w-2], y in [0,h-2]) and emits one polyline per boundary.
//   - Block code = TL·1 + TR·2 + BR·4 + BL·8; codes 0 and 15 carry no
//     boundary and are skipped.
//   - Edges are numbered 0..3 = top, right, bottom, left; a vertex is emitted
//     at the midpoint of every crossed edge, so with cell centres at integer
//     coordinates the contour runs half a cell outside each wall cell.
//
// How:
//
//   - A full 16-case segment table pairs the crossed edges of each block.
//     Saddles (codes 5 and 10) are resolved by treating diagonal walls as
//     connected, matching the 8-neighbour closing in package morph.
//   - Each physical edge is keyed once (bottom/right edges are folded onto
//     the neighbouring block's top/left), and a per-call visited set stops a
//     walk when it returns to its start.
//   - Chains that leave the grid are extended backwards from their start
//     edge, so open boundaries come out whole.
//   - Options.MaxSteps (default 10 000) bounds the work of a single walk.
//
// Closed loops are not explicitly closed: the last vertex differs from the first.
//
// Complexity: O(W×H) time and memory.
package contour
