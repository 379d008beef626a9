package sphere

import "math"

// Cap is a spherical cap used as a cheap conservative bound around a region
// of the sphere. A point p is inside when Center·p >= MinDot, i.e. MinDot is
// the cosine of the cap's angular radius.
type Cap struct {
	Center Point
	MinDot float64
}

// capSlack widens every constructed cap slightly so points that sit exactly
// on a bounded region's rim from rounded input still pass the prefilter.
const capSlack = 1e-10

// FullCap returns a cap covering the whole sphere.
func FullCap() Cap {
	return Cap{Center: Point{Z: 1}, MinDot: -1}
}

// IsFull reports whether the cap covers the whole sphere.
func (c Cap) IsFull() bool {
	return c.MinDot <= -1
}

// Contains reports whether p lies inside the cap.
func (c Cap) Contains(p Point) bool {
	return c.Center.Dot(p) >= c.MinDot
}

// Radius returns the cap's angular radius in radians.
func (c Cap) Radius() float64 {
	return math.Acos(clamp1(c.MinDot))
}

// BoundingCap returns a cap enclosing all of the given points, centered on
// their normalized centroid. Point sets spanning a quarter sphere or more
// (angular radius >= pi/2, where a cap stops being geodesically convex)
// degrade to the full sphere so the bound stays conservative.
func BoundingCap(points []Point) Cap {
	if len(points) == 0 {
		return FullCap()
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	if sum.Norm() < 1e-12 {
		// Vertices cancel out (e.g. antipodal pairs); no meaningful center.
		return FullCap()
	}
	center := sum.Normalize()

	minDot := 1.0
	for _, p := range points {
		if d := center.Dot(p); d < minDot {
			minDot = d
		}
	}
	if minDot <= 0 {
		return FullCap()
	}
	return Cap{Center: center, MinDot: minDot - capSlack}
}

// LatLonBounds returns the latitude range of the cap and, unless the cap
// crosses a pole or spans too much longitude, the half-width of its longitude
// extent around the center. All values are radians; fullLon reports that the
// cap covers every longitude.
func (c Cap) LatLonBounds() (latMin, latMax, lonHalfWidth float64, fullLon bool) {
	if c.IsFull() {
		return -math.Pi / 2, math.Pi / 2, 0, true
	}
	lat, _ := c.Center.LatLon()
	r := c.Radius()

	latMin = lat - r
	latMax = lat + r
	crossesPole := false
	if latMax >= math.Pi/2 {
		latMax = math.Pi / 2
		crossesPole = true
	}
	if latMin <= -math.Pi/2 {
		latMin = -math.Pi / 2
		crossesPole = true
	}
	if crossesPole {
		return latMin, latMax, 0, true
	}

	// Longitude extent of a cap not touching a pole: asin(sin r / cos lat).
	ratio := math.Sin(r) / math.Cos(lat)
	if ratio >= 1 {
		return latMin, latMax, 0, true
	}
	return latMin, latMax, math.Asin(ratio), false
}
