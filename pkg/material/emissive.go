package material

import "github.com/nkall/duskmarch/pkg/vecmath"

// Emissive is a light-emitting, non-reflective surface: it terminates every
// path that hits it, contributing Color*Intensity and nothing more.
type Emissive struct {
	Color     vecmath.Vec3
	Intensity float64
}

// NewEmissive creates an Emissive shader radiating Color scaled by
// intensity.
func NewEmissive(color vecmath.Vec3, intensity float64) *Emissive {
	return &Emissive{Color: color, Intensity: intensity}
}

// MaterialAt returns Color*Intensity as emission and a nil continuation
// ray, ending the path here.
func (e *Emissive) MaterialAt(ray vecmath.Ray, normal vecmath.Vec3, rng vecmath.Rng) (MaterialResult, *vecmath.Ray) {
	return MaterialResult{Emission: e.Color.Multiply(e.Intensity)}, nil
}
