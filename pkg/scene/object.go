package scene

import (
	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// ShadingKind tags which of Shading's shader fields is active, the Go
// equivalent of the original's `Shading::{Solid, Volumetric}` enum.
type ShadingKind int

const (
	// SolidShading marks an Object shaded by a SolidShader.
	SolidShading ShadingKind = iota
	// VolumetricShading marks an Object shaded by a VolumetricShader.
	VolumetricShading
)

// Shading pairs a kind tag with the (possibly shared) shader it refers to.
// Exactly one of Solid/Volumetric is meaningful, selected by Kind.
type Shading struct {
	Kind       ShadingKind
	Solid      material.SolidShader
	Volumetric material.VolumetricShader
}

// NewSolidShading wraps a SolidShader as a Shading.
func NewSolidShading(s material.SolidShader) Shading {
	return Shading{Kind: SolidShading, Solid: s}
}

// NewVolumetricShading wraps a VolumetricShader as a Shading.
func NewVolumetricShading(v material.VolumetricShader) Shading {
	return Shading{Kind: VolumetricShading, Volumetric: v}
}

// Object pairs a signed-distance shape with how it is shaded.
type Object struct {
	Shape   geometry.Shape
	Shading Shading
}

// NewObject creates an Object.
func NewObject(shape geometry.Shape, shading Shading) Object {
	return Object{Shape: shape, Shading: shading}
}

// Shade computes the object's surface normal at ray.Location (for solid
// shading) and dispatches to the appropriate shader, returning the shaded
// material and the path's continuation ray (nil terminates the path here).
func (o Object) Shade(ray vecmath.Ray, rng vecmath.Rng) (material.MaterialResult, *vecmath.Ray) {
	switch o.Shading.Kind {
	case SolidShading:
		normal := o.Shape.Normal(ray.Location)
		return o.Shading.Solid.MaterialAt(ray, normal, rng)
	case VolumetricShading:
		return o.Shading.Volumetric.MaterialAt(ray, rng)
	default:
		return material.Black(), nil
	}
}
