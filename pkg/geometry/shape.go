package geometry

import (
	"math"

	"github.com/nkall/duskmarch/pkg/vecmath"
)

// centralDifferenceEps is the step used by CentralDifferenceNormal. Shapes
// with an analytic normal (e.g. Sphere) bypass it entirely.
const centralDifferenceEps = 0.00001

// Shape is a signed-distance-field primitive. Dist must be negative inside
// the shape, zero on its boundary, and a true lower bound on distance to the
// surface everywhere else: the marcher's correctness depends on Dist never
// overestimating that distance.
type Shape interface {
	// Dist returns the signed distance from p to the shape's surface.
	Dist(p vecmath.Vec3) float64
	// BoundingBox returns the shape's axis-aligned bounding box.
	BoundingBox() AABB
	// CanRayHit reports whether ray could possibly reach the shape under
	// straight-line travel. It is a culling hint used to skip a Dist
	// evaluation, not a hit test: Sphere tests the ray's whole infinite
	// line, the AABB default only its forward half (t >= 0). A false
	// negative is a correctness bug, a false positive only costs a wasted
	// Dist evaluation.
	CanRayHit(ray vecmath.Ray) bool
	// Normal returns the outward unit surface normal at p, which is assumed
	// to be on or extremely close to the surface.
	Normal(p vecmath.Vec3) vecmath.Vec3
}

// CentralDifferenceNormal estimates a shape's surface normal at p from its
// Dist function by central differencing along each axis, the default normal
// computation shared by every shape without a cheaper analytic form.
func CentralDifferenceNormal(s Shape, p vecmath.Vec3) vecmath.Vec3 {
	eps := centralDifferenceEps
	dx := s.Dist(vecmath.NewVec3(p.X+eps, p.Y, p.Z)) - s.Dist(vecmath.NewVec3(p.X-eps, p.Y, p.Z))
	dy := s.Dist(vecmath.NewVec3(p.X, p.Y+eps, p.Z)) - s.Dist(vecmath.NewVec3(p.X, p.Y-eps, p.Z))
	dz := s.Dist(vecmath.NewVec3(p.X, p.Y, p.Z+eps)) - s.Dist(vecmath.NewVec3(p.X, p.Y, p.Z-eps))
	return vecmath.NewVec3(dx, dy, dz).Normalize()
}

// AABBCanRayHit is the default CanRayHit implementation: a plain slab test
// against the shape's bounding box over t in [0, +inf). Shapes that can cheaply
// test exact intersection (Sphere) override this with a tighter test.
func AABBCanRayHit(s Shape, ray vecmath.Ray) bool {
	return s.BoundingBox().RayIntersect(ray.Location, ray.Direction, math.MaxFloat64)
}
