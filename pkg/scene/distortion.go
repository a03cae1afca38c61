package scene

import (
	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// DefaultDistortionStrength and DefaultDistortionRadius match the
// original's `Distortion::default` (strength 0.3, radius 5.0).
const (
	DefaultDistortionStrength = 0.3
	DefaultDistortionRadius   = 5.0
)

// Distortion is a gravitational-lensing-style field that bends ray
// direction toward its center, falling off with distance.
type Distortion struct {
	Shape    *geometry.Sphere
	Strength float64
}

// NewDistortion creates a Distortion centered at center with the given
// radius and strength.
func NewDistortion(center vecmath.Vec3, radius, strength float64) Distortion {
	return Distortion{Shape: geometry.NewSphere(center, radius), Strength: strength}
}

// NewDefaultDistortion creates a Distortion at center using the default
// strength and radius.
func NewDefaultDistortion(center vecmath.Vec3) Distortion {
	return NewDistortion(center, DefaultDistortionRadius, DefaultDistortionStrength)
}

// StrengthAt returns the distortion's force magnitude at point p:
// strength / (dist_to_surface(p) + radius)^2, matching the original's
// `Distortion::strength`.
func (d Distortion) StrengthAt(p vecmath.Vec3) float64 {
	denom := d.Shape.Dist(p) + d.Shape.Radius
	return d.Strength / (denom * denom)
}

// Force returns the direction a ray at p should be deflected toward: the
// unit vector from p to the distortion's center, scaled by dst (the march
// step about to be taken) and the distortion's strength at p.
func (d Distortion) Force(p vecmath.Vec3, dst float64) vecmath.Vec3 {
	toCenter := d.Shape.Center.Subtract(p).Normalize()
	return toCenter.Multiply(dst * d.StrengthAt(p))
}
