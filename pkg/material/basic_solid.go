package material

import "github.com/nkall/duskmarch/pkg/vecmath"

// BasicSolid is a diffuse/metallic surface with a fixed base color and
// emission, matching the original's `BasicSolidShader`
// (common/src/shaders/basic_solid.rs): Metallic blends between a perfect
// mirror reflection and cosine-weighted diffuse scattering.
type BasicSolid struct {
	Albedo   vecmath.Vec3
	Emission vecmath.Vec3
	Metallic float64
}

// NewBasicSolid creates a non-metallic, non-emissive BasicSolid with the
// given albedo.
func NewBasicSolid(albedo vecmath.Vec3) *BasicSolid {
	return &BasicSolid{Albedo: albedo}
}

// WithEmission returns a copy of s with Emission set.
func (s *BasicSolid) WithEmission(emission vecmath.Vec3) *BasicSolid {
	return &BasicSolid{Albedo: s.Albedo, Emission: emission, Metallic: s.Metallic}
}

// WithMetallic returns a copy of s with Metallic set.
func (s *BasicSolid) WithMetallic(metallic float64) *BasicSolid {
	return &BasicSolid{Albedo: s.Albedo, Emission: s.Emission, Metallic: metallic}
}

// MaterialAt scatters the ray diffusely (cosine-weighted about normal) or
// reflects it specularly, chosen per-sample by comparing a uniform random
// draw against Metallic. The continuation ray is advanced by a small
// fixed offset to clear the surface before the next march begins.
func (s *BasicSolid) MaterialAt(ray vecmath.Ray, normal vecmath.Vec3, rng vecmath.Rng) (MaterialResult, *vecmath.Ray) {
	mat := MaterialResult{Albedo: s.Albedo, Emission: s.Emission}

	var next vecmath.Ray
	if rng.Float64() > s.Metallic {
		next = vecmath.Ray{
			Location:  ray.Location,
			Direction: normal.Add(vecmath.RandUnitVector(rng)).Normalize(),
			Kind:      vecmath.Secondary,
		}
	} else {
		next = ray.Reflect(normal)
	}
	next.Advance(0.01)

	return mat, &next
}
