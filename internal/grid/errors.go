package grid

import "errors"

var (
	// ErrOutOfBounds is returned for a coordinate outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidDimensions is returned for a non-positive size.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrMalformed is returned when parsing a tilemap dump fails.
	ErrMalformed = errors.New("grid: malformed tilemap")
)
