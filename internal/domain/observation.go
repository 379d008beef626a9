package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Observation is the sector/camera/CCD triple decoded from an FFI
// observation ID.
type Observation struct {
	Sector int
	Camera int
	CCD    int
}

var obsIDPattern = regexp.MustCompile(`^tess_s(\d{4})-([1-4])-([1-4])$`)

// ParseObservationID decodes an observation ID of the form tess_s0044-1-3.
func ParseObservationID(id string) (Observation, error) {
	m := obsIDPattern.FindStringSubmatch(id)
	if m == nil {
		return Observation{}, fmt.Errorf("malformed observation ID %q", id)
	}
	sector, err := strconv.Atoi(m[1])
	if err != nil {
		return Observation{}, fmt.Errorf("malformed observation ID %q: %w", id, err)
	}
	camera, _ := strconv.Atoi(m[2])
	ccd, _ := strconv.Atoi(m[3])
	return Observation{Sector: sector, Camera: camera, CCD: ccd}, nil
}
