package footprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gideongrinberg/tesslocate/internal/sphere"
)

// regionTag is the leading literal of every footprint region in the cache.
const regionTag = "POLYGON"

// ParseRegion parses one footprint region in the cache's text format,
//
//	POLYGON RA1 DEC1 RA2 DEC2 ...
//
// with coordinates in degrees, into a normalized Ring. Validation failures
// are reported in order: tag mismatch, odd coordinate count, unparseable
// coordinate, then a degenerate ring after duplicate removal. A coincident
// closing vertex is dropped, as are consecutive duplicate vertices.
func ParseRegion(region string) (Ring, error) {
	fields := strings.Fields(region)
	if len(fields) == 0 || fields[0] != regionTag {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, truncate(region, 40))
	}

	coords := fields[1:]
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: %d tokens", ErrOddCoordinateCount, len(coords))
	}

	ring := make(Ring, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		ra, err := strconv.ParseFloat(coords[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coords[i])
		}
		dec, err := strconv.ParseFloat(coords[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coords[i+1])
		}

		p := sphere.PointFromRADec(ra, dec)
		if len(ring) > 0 && p == ring[len(ring)-1] {
			continue
		}
		ring = append(ring, p)
	}

	// Rings in the cache repeat the first vertex to close the loop; store
	// the ring open.
	if len(ring) >= 2 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}

	if len(ring) < 3 {
		return nil, fmt.Errorf("%w: %d distinct vertices", ErrDegenerateRing, len(ring))
	}

	ring.normalize()
	return ring, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
