package mapfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for map documents.
var (
	// ErrIO reports a failure to read or write the underlying storage.
	ErrIO = errors.New("mapfile: i/o failure")

	// ErrContent reports a document that was read but cannot be accepted.
	ErrContent = errors.New("mapfile: invalid content")

	// ErrMalformed indicates syntactically invalid JSON or a mistyped value.
	ErrMalformed = fmt.Errorf("%w: malformed json", ErrContent)

	// ErrMissingField indicates a required key is absent.
	ErrMissingField = fmt.Errorf("%w: missing required field", ErrContent)

	// ErrBadToken indicates a string in a float array other than the
	// non-finite tokens.
	ErrBadToken = fmt.Errorf("%w: unrecognized float token", ErrContent)

	// ErrBadSpec indicates grid metadata that fails validation.
	ErrBadSpec = fmt.Errorf("%w: invalid grid spec", ErrContent)

	// ErrGridShape indicates an array whose length or values do not fit the grid spec.
	ErrGridShape = fmt.Errorf("%w: array does not match spec", ErrContent)

	// ErrNotFound is returned by Dir when no document exists for an id.
	ErrNotFound = errors.New("mapfile: map not found")
)
