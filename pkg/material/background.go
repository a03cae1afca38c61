package material

import "github.com/nkall/duskmarch/pkg/vecmath"

// SolidColorBackground is a BackgroundShader that returns the same color
// for every ray direction, the simplest background and the one used by the
// single-sphere end-to-end scenario.
type SolidColorBackground struct {
	Color vecmath.Vec3
}

// NewSolidColorBackground creates a SolidColorBackground.
func NewSolidColorBackground(color vecmath.Vec3) *SolidColorBackground {
	return &SolidColorBackground{Color: color}
}

// EmissionAt returns Color regardless of the ray.
func (b *SolidColorBackground) EmissionAt(ray vecmath.Ray) vecmath.Vec3 {
	return b.Color
}

// StarSkyBackground is a direction-bucketed procedural star field: most
// directions resolve to near-black sky, a sparse, noise-selected subset of
// directions resolve to a blackbody-colored star, and directions close to
// the equatorial plane pick up a faint glow, matching the original's
// `StarSky` background (common/src/shaders/star_sky.rs) built on a Worley
// cell noise (blackhole/src/texture.rs).
type StarSkyBackground struct {
	Density      float64
	GlowStrength float64
	CellsPerAxis float64
}

// NewStarSkyBackground creates a StarSkyBackground. density is the fraction
// of noise cells that resolve to a visible star (0 disables stars
// entirely); glowStrength scales the equatorial glow term.
func NewStarSkyBackground(density, glowStrength float64) *StarSkyBackground {
	return &StarSkyBackground{Density: density, GlowStrength: glowStrength, CellsPerAxis: 64}
}

// EmissionAt returns the star-field color for the given ray's direction.
func (b *StarSkyBackground) EmissionAt(ray vecmath.Ray) vecmath.Vec3 {
	d := ray.Direction.Normalize()

	cellValue := worleyCell(d, b.CellsPerAxis)
	star := vecmath.Zero()
	if cellValue < b.Density {
		temperature := 500 + cellValue/maxOf(b.Density, 1e-9)*6000
		brightness := 1.0 - cellValue/maxOf(b.Density, 1e-9)
		star = vecmath.BlackbodyColor(temperature).Multiply(brightness)
	}

	equatorFalloff := 1.0 - absF(d.Y)
	glow := vecmath.NewVec3(0.05, 0.08, 0.15).Multiply(equatorFalloff * equatorFalloff * b.GlowStrength)

	return star.Add(glow)
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// worleyCell returns a deterministic pseudo-random value in [0,1) for the
// grid cell a unit direction falls into, used as a cheap stand-in for a
// Worley (cellular) noise lookup keyed on direction instead of position.
func worleyCell(d vecmath.Vec3, cellsPerAxis float64) float64 {
	ix := int64((d.X*0.5 + 0.5) * cellsPerAxis)
	iy := int64((d.Y*0.5 + 0.5) * cellsPerAxis)
	iz := int64((d.Z*0.5 + 0.5) * cellsPerAxis)

	h := ix*73856093 ^ iy*19349663 ^ iz*83492791
	if h < 0 {
		h = -h
	}
	return float64(h%1000000) / 1000000.0
}
