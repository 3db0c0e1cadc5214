// Package floormap turns 2D floor occupancy grids into vector wall outlines
// and distance-to-wall fields.
//
// What it is
//
//	A set of small, pure packages, each owning one stage:
//		• grid: occupancy cells, world mapping, regions, corridor carving
//		• morph: 3×3 binary closing that seals one-cell gaps in walls
//		• contour: boundary walk over 2×2 blocks with visited-edge bookkeeping
//		• rdp: Ramer–Douglas–Peucker simplification (iterative)
//		• chaikin: corner-cutting smoothing
//		• pipeline: the chain above, plus Derive for contours + field at once
//		• distfield: multi-source BFS distance to the nearest wall
//	and the collaborators around them:
//		• mapfile: persisted JSON document (non-finite floats as tokens)
//		• store: SQLite catalogue of documents
//
// Conventions
//
//   - Grid coordinates: x grows east, y grows south; cell (x,y) is stored at
//     y*Width + x. Contour points are in grid-cell units; grid.PointToWorld
//     maps them to meters.
//   - No stage mutates its input or keeps state between calls.
//   - Degenerate grids (width or height below 2) yield empty results.
//   - Sentinel errors are package-prefixed and matched with errors.Is.
//
// The floormap command (cmd/floormap) exposes all of it on the command line.
package floormap
