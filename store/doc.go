// Package store is a SQLite catalogue of floor maps.
//
// Each row holds one mapfile document verbatim next to a few summary
// columns (title, dimensions, wall count) so listings do not need to decode
// documents. The driver is modernc.org/sqlite, so no cgo is required.
//
// Errors:
//
//   - ErrNotFound: no map with the requested id.
//   - ErrClosed:   the store was used after Close.
//
// Driver failures are wrapped with the operation that hit them; decode
// failures keep their mapfile error kind.
package store
