// Package geometry provides the signed-distance-field shapes and bounding
// volumes the marcher steps through.
package geometry

import (
	"math"

	"github.com/nkall/duskmarch/pkg/vecmath"
)

// AABB is an axis-aligned bounding box, used to cheaply reject rays that
// cannot possibly hit a shape before paying for its (possibly expensive)
// distance function.
type AABB struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// NewAABB builds an AABB from explicit per-axis bounds.
func NewAABB(xMin, xMax, yMin, yMax, zMin, zMax float64) AABB {
	return AABB{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax, ZMin: zMin, ZMax: zMax}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		XMin: math.Min(a.XMin, b.XMin), XMax: math.Max(a.XMax, b.XMax),
		YMin: math.Min(a.YMin, b.YMin), YMax: math.Max(a.YMax, b.YMax),
		ZMin: math.Min(a.ZMin, b.ZMin), ZMax: math.Max(a.ZMax, b.ZMax),
	}
}

// RayIntersect performs the standard slab test, returning whether the ray
// from origin in direction dir hits the box before tMax.
func (a AABB) RayIntersect(origin, dir vecmath.Vec3, tMax float64) bool {
	tMin := 0.0
	hi := tMax

	axis := func(o, d, lo, hiBound float64) bool {
		if d == 0 {
			return o >= lo && o <= hiBound
		}
		invD := 1.0 / d
		t0 := (lo - o) * invD
		t1 := (hiBound - o) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < hi {
			hi = t1
		}
		return tMin <= hi
	}

	if !axis(origin.X, dir.X, a.XMin, a.XMax) {
		return false
	}
	if !axis(origin.Y, dir.Y, a.YMin, a.YMax) {
		return false
	}
	if !axis(origin.Z, dir.Z, a.ZMin, a.ZMax) {
		return false
	}
	return true
}

// Diagonal returns the length of the box's space diagonal.
func (a AABB) Diagonal() float64 {
	dx := a.XMax - a.XMin
	dy := a.YMax - a.YMin
	dz := a.ZMax - a.ZMin
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
