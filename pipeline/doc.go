// Package pipeline is the entry point collaborators call to derive vector
// contours and the distance field from an occupancy grid snapshot.
//
// Contour chain:
//
//	grid.Grid ─Binary→ morph.Close ─→ contour.Trace ─→ rdp.Simplify ─→ chaikin.Smooth
//
// Every stage is a pure function of its input; Run and Contours allocate
// fresh outputs and keep no state between calls. Derive additionally builds
// the distance field and runs both branches concurrently on the same
// read-only snapshot. The caller must not mutate the grid until Derive returns.
//
// Errors:
//
//   - ErrGridNil:          a nil *grid.Grid was passed.
//   - ErrOptionViolation:  an Option carried an invalid value.
package pipeline
