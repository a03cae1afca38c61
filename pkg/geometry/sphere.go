package geometry

import (
	"fmt"

	"github.com/nkall/duskmarch/pkg/vecmath"
)

// Sphere is a signed-distance sphere. Distortion fields are also built on
// top of Sphere's exact ray/sphere test, since a distortion's influence
// falls off from the same center/radius shape.
type Sphere struct {
	Center vecmath.Vec3
	Radius float64
	bbox   AABB
}

// NewSphere creates a sphere, panicking if radius is not positive (the
// original's `set_radius` panics identically, since a non-positive radius
// makes every downstream distance and bounding-box computation meaningless).
func NewSphere(center vecmath.Vec3, radius float64) *Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %g", radius))
	}
	s := &Sphere{Center: center, Radius: radius}
	s.computeBB()
	return s
}

func (s *Sphere) computeBB() {
	s.bbox = NewAABB(
		s.Center.X-s.Radius, s.Center.X+s.Radius,
		s.Center.Y-s.Radius, s.Center.Y+s.Radius,
		s.Center.Z-s.Radius, s.Center.Z+s.Radius,
	)
}

// Dist returns the exact signed distance to the sphere's surface.
func (s *Sphere) Dist(p vecmath.Vec3) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// BoundingBox returns the sphere's axis-aligned bounding box, precomputed at
// construction time.
func (s *Sphere) BoundingBox() AABB {
	return s.bbox
}

// Normal returns the analytic outward normal, ignoring any epsilon since a
// sphere's gradient is exact everywhere but its center.
func (s *Sphere) Normal(p vecmath.Vec3) vecmath.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// CanRayHit tests whether ray's infinite line passes within Radius of the
// sphere's center, via the squared perpendicular-distance test: no
// direction-sign or bounding-distance check, matching the original's
// `Sphere::can_ray_hit` exactly (culling is a hint, not a hit test).
func (s *Sphere) CanRayHit(ray vecmath.Ray) bool {
	l := s.Center.Subtract(ray.Location)
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca
	return d2 <= s.Radius*s.Radius
}
