package geometry

import (
	"math"

	"github.com/nkall/duskmarch/pkg/vecmath"
)

// Cube is an axis-aligned signed-distance cube of uniform scale centered at
// Center.
type Cube struct {
	Center vecmath.Vec3
	Scale  float64
}

// NewCube creates a cube with the given center and edge length.
func NewCube(center vecmath.Vec3, scale float64) *Cube {
	return &Cube{Center: center, Scale: scale}
}

// Dist returns the signed distance to the cube's surface, computed as the
// max over axes of |center-point| - scale/2 (so it is negative inside).
func (c *Cube) Dist(p vecmath.Vec3) float64 {
	half := c.Scale / 2
	dx := math.Abs(c.Center.X-p.X) - half
	dy := math.Abs(c.Center.Y-p.Y) - half
	dz := math.Abs(c.Center.Z-p.Z) - half
	return math.Max(dx, math.Max(dy, dz))
}

// BoundingBox returns the cube's axis-aligned bounding box.
func (c *Cube) BoundingBox() AABB {
	half := c.Scale / 2
	return NewAABB(
		c.Center.X-half, c.Center.X+half,
		c.Center.Y-half, c.Center.Y+half,
		c.Center.Z-half, c.Center.Z+half,
	)
}

// Normal estimates the surface normal via central differencing.
func (c *Cube) Normal(p vecmath.Vec3) vecmath.Vec3 {
	return CentralDifferenceNormal(c, p)
}

// CanRayHit falls back to the default AABB slab test.
func (c *Cube) CanRayHit(ray vecmath.Ray) bool {
	return AABBCanRayHit(c, ray)
}
