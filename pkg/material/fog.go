package material

import "github.com/nkall/duskmarch/pkg/vecmath"

// HomogeneousFog is a uniform-density participating medium. Density is
// consulted by the marcher at every step to decide whether a scattering
// event occurs at all; once one does, MaterialAt emits Color and lets the
// path continue undeflected (isotropic in-scatter is ignored).
type HomogeneousFog struct {
	Color      vecmath.Vec3
	Density    float64
	Absorption float64
}

// NewHomogeneousFog creates a HomogeneousFog with the given emission color,
// density, and absorption coefficient.
func NewHomogeneousFog(color vecmath.Vec3, density, absorption float64) *HomogeneousFog {
	return &HomogeneousFog{Color: color, Density: density, Absorption: absorption}
}

// DensityAt returns the medium's constant density, ignoring position.
func (f *HomogeneousFog) DensityAt(position vecmath.Vec3) float64 {
	return f.Density
}

// MaterialAt emits Color unchanged, sets the albedo to 1-Absorption
// (clamped to [0,1]) so the continued path is attenuated, and continues the
// path along the same direction it arrived with.
func (f *HomogeneousFog) MaterialAt(ray vecmath.Ray, rng vecmath.Rng) (MaterialResult, *vecmath.Ray) {
	transmittance := clamp01(1.0 - f.Absorption)
	mat := MaterialResult{Emission: f.Color, Albedo: vecmath.FromValue(transmittance)}

	next := ray
	next.Kind = vecmath.Secondary
	next.Advance(0.01)
	return mat, &next
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
