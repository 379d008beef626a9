package footprint

import "errors"

// Per-record parse failures. A record that fails to parse is skipped and
// counted during an index build; it never aborts the build.
var (
	// ErrInvalidTag means the region text does not start with the POLYGON tag.
	ErrInvalidTag = errors.New("region is not a POLYGON")

	// ErrOddCoordinateCount means the region has an odd number of coordinate
	// tokens, so they cannot pair up into RA/Dec vertices.
	ErrOddCoordinateCount = errors.New("odd number of coordinates")

	// ErrInvalidCoordinate means a coordinate token failed to parse as a
	// floating-point number.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrDegenerateRing means fewer than 3 distinct vertices remain after
	// dropping duplicates, leaving no well-defined interior.
	ErrDegenerateRing = errors.New("degenerate ring")
)
