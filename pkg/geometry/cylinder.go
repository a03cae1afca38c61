package geometry

import (
	"fmt"
	"math"

	"github.com/nkall/duskmarch/pkg/vecmath"
)

// Cylinder is a capped signed-distance cylinder, axis-aligned along Y,
// centered at Center.
type Cylinder struct {
	Center vecmath.Vec3
	Radius float64
	Height float64
	bbox   AABB
}

// NewCylinder creates a cylinder, panicking if radius or height is not
// positive, matching the construction-time validation used elsewhere in
// this package for parameters that would otherwise make the distance
// function meaningless.
func NewCylinder(center vecmath.Vec3, radius, height float64) *Cylinder {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: cylinder radius must be positive, got %g", radius))
	}
	if height <= 0 {
		panic(fmt.Sprintf("geometry: cylinder height must be positive, got %g", height))
	}
	c := &Cylinder{Center: center, Radius: radius, Height: height}
	c.computeBB()
	return c
}

func (c *Cylinder) computeBB() {
	c.bbox = NewAABB(
		c.Center.X-c.Radius, c.Center.X+c.Radius,
		c.Center.Y-c.Height/2, c.Center.Y+c.Height/2,
		c.Center.Z-c.Radius, c.Center.Z+c.Radius,
	)
}

// Dist returns the signed distance to the cylinder's surface, combining the
// radial distance in the XZ plane with the axial distance along Y.
func (c *Cylinder) Dist(p vecmath.Vec3) float64 {
	local := p.Subtract(c.Center)
	radial := math.Hypot(local.X, local.Z) - c.Radius
	axial := math.Abs(local.Y) - c.Height/2

	if radial < 0 && axial < 0 {
		return math.Max(radial, axial)
	}
	radialOut := math.Max(radial, 0)
	axialOut := math.Max(axial, 0)
	return math.Hypot(radialOut, axialOut)
}

// BoundingBox returns the cylinder's axis-aligned bounding box.
func (c *Cylinder) BoundingBox() AABB {
	return c.bbox
}

// Normal estimates the surface normal via central differencing.
func (c *Cylinder) Normal(p vecmath.Vec3) vecmath.Vec3 {
	return CentralDifferenceNormal(c, p)
}

// CanRayHit falls back to the default AABB slab test.
func (c *Cylinder) CanRayHit(ray vecmath.Ray) bool {
	return AABBCanRayHit(c, ray)
}
