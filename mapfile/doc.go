// Package mapfile reads and writes the persisted floor-map document.
//
// A document carries the occupancy grid, its metadata, the doorways and
// beacons placed on it and, optionally, a cached distance field:
//
//	{
//	  "beacons":       [{"id", "name", "position": [x, z]}],
//	  "distanceField": {"height", "meters": [f | "NaN" | "Infinity" | "-Infinity"], "width"},
//	  "doorways":      [{"id", "pointA": [x, z], "pointB": [x, z], "width"}],
//	  "grid":          [0 | 1, ...],
//	  "id":            "UUID",
//	  "spec":          {"height", "originWorldXZ": [x, z], "resolution", "width"},
//	  "title":         "..."
//	}
//
// Keys are written sorted and indented. JSON has no literal for non-finite
// numbers, so the meters array spells them as the strings "NaN", "Infinity"
// and "-Infinity"; Float implements that mapping and rejects any other string.
// Doorway endpoints written under the older "a"/"b" keys are still accepted.
//
// Errors:
//
//   - ErrIO:      the document could not be read or written (missing file,
//     permissions, short write). The underlying os error stays in the chain.
//   - ErrContent: the bytes were read but are not a valid document. More
//     specific kinds wrap it: ErrMalformed, ErrMissingField, ErrBadToken,
//     ErrBadSpec and ErrGridShape.
//
// Dir stores one document per map in a directory, named "<ID>.json".
package mapfile
