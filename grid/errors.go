package grid

import "errors"

var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrBadResolution indicates a resolution that is not finite and > 0.
	ErrBadResolution = errors.New("grid: resolution must be a finite positive number")
	// ErrLengthMismatch indicates a cell slice whose length is not width×height.
	ErrLengthMismatch = errors.New("grid: cell count does not match width×height")
)
