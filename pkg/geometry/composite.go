package geometry

import (
	"math"

	"github.com/nkall/duskmarch/pkg/vecmath"
)

// BooleanOp selects how a Composite shape combines its two children.
type BooleanOp int

const (
	// Union keeps everything inside either child.
	Union BooleanOp = iota
	// Intersection keeps only what is inside both children.
	Intersection
	// Difference keeps what is inside A but outside B.
	Difference
)

// Composite combines two shapes with a boolean operation.
type Composite struct {
	A, B Shape
	Op   BooleanOp
}

// NewComposite creates a Composite shape.
func NewComposite(a, b Shape, op BooleanOp) *Composite {
	return &Composite{A: a, B: b, Op: op}
}

// Dist returns the signed distance for the combined shape: min(a,b) for
// Union, max(a,b) for Intersection, max(a,-b) for Difference.
func (c *Composite) Dist(p vecmath.Vec3) float64 {
	da := c.A.Dist(p)
	db := c.B.Dist(p)
	switch c.Op {
	case Union:
		return math.Min(da, db)
	case Intersection:
		return math.Max(da, db)
	case Difference:
		return math.Max(da, -db)
	default:
		return math.Min(da, db)
	}
}

// BoundingBox returns the union of both children's bounding boxes, except
// for Difference, where it is simply A's bounding box (subtracting B can
// only shrink the occupied volume, never grow it beyond A).
func (c *Composite) BoundingBox() AABB {
	if c.Op == Difference {
		return c.A.BoundingBox()
	}
	return c.A.BoundingBox().Union(c.B.BoundingBox())
}

// Normal estimates the surface normal via central differencing, since the
// combined distance function is only piecewise-smooth.
func (c *Composite) Normal(p vecmath.Vec3) vecmath.Vec3 {
	return CentralDifferenceNormal(c, p)
}

// CanRayHit falls back to the default AABB slab test.
func (c *Composite) CanRayHit(ray vecmath.Ray) bool {
	return AABBCanRayHit(c, ray)
}
