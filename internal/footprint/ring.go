// Package footprint parses sky-survey footprint polygons and indexes them for
// point-containment queries. Rings are spherical polygons: ordered vertices on
// the unit sphere joined by great-circle arcs, wound so that the smaller of
// the two regions they bound is the interior.
package footprint

import (
	"math"

	"github.com/gideongrinberg/tesslocate/internal/sphere"
)

// Ring is the ordered vertex ring of a spherical polygon, stored without a
// closing duplicate. After normalization the ring is wound counterclockwise
// around its interior (positive enclosed solid angle), so every containment
// test shares one interior definition. Rings are never mutated after parsing.
type Ring []sphere.Point

// signedArea returns the solid angle enclosed by the ring in steradians,
// signed by winding direction: positive when the traversal runs
// counterclockwise around the enclosed region as seen from outside the
// sphere. Computed as a fan of spherical triangles from the first vertex
// using the van Oosterom-Strackee formula.
func (r Ring) signedArea() float64 {
	var total float64
	for i := 1; i+1 < len(r); i++ {
		total += signedTriangleArea(r[0], r[i], r[i+1])
	}
	return total
}

func signedTriangleArea(a, b, c sphere.Point) float64 {
	num := a.Dot(b.Cross(c))
	den := 1 + a.Dot(b) + b.Dot(c) + c.Dot(a)
	return 2 * math.Atan2(num, den)
}

// normalize flips the vertex order when the ring is wound clockwise, so the
// smaller bounded region always has positive winding. This mirrors the
// footprint cache's convention that a footprint covers the smaller region.
func (r Ring) normalize() {
	if r.signedArea() >= 0 {
		return
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// ContainsPoint reports whether p lies inside the ring's interior.
//
// It sums the signed angles subtended at p by each great-circle edge. For a
// normalized ring the total winds to +2pi when p is inside, ~0 when p is
// outside, and -2pi near the interior's antipode, so testing sum > pi keeps
// antipodal points out. Boundary points resolve to one side deterministically:
// the computation is pure floating-point arithmetic on the inputs.
func (r Ring) ContainsPoint(p sphere.Point) bool {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		a := r[i]
		b := r[(i+1)%n]

		// Signed angle at p between the tangent directions toward a and b.
		// p·(a×b) and a·b - (a·p)(b·p) are the sine and cosine terms of the
		// projections onto p's tangent plane, without forming them explicitly.
		sin := p.Dot(a.Cross(b))
		cos := a.Dot(b) - a.Dot(p)*b.Dot(p)
		if sin == 0 && cos == 0 {
			continue
		}
		sum += math.Atan2(sin, cos)
	}
	return sum > math.Pi
}

// BoundingCap returns a cap guaranteed to contain the ring and its interior.
// Caps smaller than a hemisphere are geodesically convex, so the great-circle
// edges between vertices stay inside the cap and the enclosed smaller region
// does too; larger vertex spreads degrade to the full sphere.
func (r Ring) BoundingCap() sphere.Cap {
	return sphere.BoundingCap(r)
}
