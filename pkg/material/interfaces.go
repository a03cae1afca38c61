// Package material defines the shading model: solid surfaces, participating
// volumes, and backgrounds, plus the shared-handle plumbing that lets many
// objects reference the same shader without copying it.
package material

import "github.com/nkall/duskmarch/pkg/vecmath"

// MaterialResult is the outcome of shading a single surface interaction: an
// emitted contribution and an albedo the integrator multiplies the
// recursive (continuation-ray) result by.
type MaterialResult struct {
	Emission vecmath.Vec3
	Albedo   vecmath.Vec3
}

// Black returns the MaterialResult for a fully absorptive, non-emissive
// surface (zero emission, zero albedo).
func Black() MaterialResult {
	return MaterialResult{}
}

// SolidShader shades an opaque surface hit and decides the ray's
// continuation. Returning a nil *vecmath.Ray terminates the path at this
// surface (the emission is the path's final contribution); returning a
// non-nil ray continues the path integrator with it. rng is the calling
// worker's deterministic random source, threaded explicitly rather than
// pulled from a global generator so a render is reproducible from a single
// seed regardless of goroutine scheduling.
type SolidShader interface {
	MaterialAt(ray vecmath.Ray, normal vecmath.Vec3, rng vecmath.Rng) (MaterialResult, *vecmath.Ray)
}

// VolumetricShader shades a step taken inside a participating medium.
type VolumetricShader interface {
	// DensityAt returns the medium's density at position, used by the
	// marcher to decide whether a given step triggers a scattering event.
	DensityAt(position vecmath.Vec3) float64
	// MaterialAt shades a scattering event along ray, with the same
	// continuation-ray contract as SolidShader.MaterialAt.
	MaterialAt(ray vecmath.Ray, rng vecmath.Rng) (MaterialResult, *vecmath.Ray)
}

// BackgroundShader supplies the color seen by a ray that escapes the scene
// without hitting anything.
type BackgroundShader interface {
	EmissionAt(ray vecmath.Ray) vecmath.Vec3
}
