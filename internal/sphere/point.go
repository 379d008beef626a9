// Package sphere provides unit-sphere geometry primitives for celestial
// coordinates: points, bounding caps, and the conversions between them and
// right ascension / declination in degrees.
package sphere

import "math"

// Point is a position on the celestial sphere stored as a unit 3-vector.
// The frame is the usual equatorial one: X toward RA 0, Z toward the north
// celestial pole. Points are immutable values.
type Point struct {
	X, Y, Z float64
}

// PointFromRADec converts a right ascension / declination pair in degrees to
// a unit-sphere point. Right ascensions above 180 are first mapped into
// (-180, 180] by subtracting 360 so angular arithmetic stays well conditioned
// near the 0/360 seam. Declination must lie in [-90, 90]; out-of-range values
// are a caller contract violation and are never clamped.
func PointFromRADec(raDeg, decDeg float64) Point {
	if raDeg > 180 {
		raDeg -= 360
	}
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	cosDec := math.Cos(dec)
	return Point{
		X: cosDec * math.Cos(ra),
		Y: cosDec * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// Dot returns the dot product with other.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// Cross returns the cross product with other.
func (p Point) Cross(other Point) Point {
	return Point{
		X: p.Y*other.Z - p.Z*other.Y,
		Y: p.Z*other.X - p.X*other.Z,
		Z: p.X*other.Y - p.Y*other.X,
	}
}

// Add returns p + other. The result is generally not a unit vector.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y, Z: p.Z + other.Z}
}

// Norm returns the Euclidean norm of the vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalize returns the vector scaled to unit length. The zero vector is
// returned unchanged.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return Point{X: p.X / n, Y: p.Y / n, Z: p.Z / n}
}

// LatLon returns the latitude (declination) and longitude (right ascension)
// of the point in radians. Longitude lies in (-pi, pi].
func (p Point) LatLon() (lat, lon float64) {
	return math.Asin(clamp1(p.Z)), math.Atan2(p.Y, p.X)
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
