package material

import (
	"math/rand"
	"testing"

	"github.com/nkall/duskmarch/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestBasicSolidMaterialAtReturnsAlbedoAndContinuation(t *testing.T) {
	s := NewBasicSolid(vecmath.NewVec3(0.8, 0.2, 0.2))
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 1, 0), vecmath.NewVec3(0, -1, 0))

	result, next := s.MaterialAt(ray, vecmath.NewVec3(0, 1, 0), rng)

	assert.Equal(t, vecmath.NewVec3(0.8, 0.2, 0.2), result.Albedo)
	assert.NotNil(t, next)
	assert.Equal(t, vecmath.Secondary, next.Kind)
}

func TestBasicSolidFullyMetallicAlwaysReflects(t *testing.T) {
	s := NewBasicSolid(vecmath.NewVec3(1, 1, 1)).WithMetallic(1.0)
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(0, -1, 0))

	_, next := s.MaterialAt(ray, vecmath.NewVec3(0, 1, 0), rng)

	assert.InDelta(t, 1.0, next.Direction.Y, 1e-9)
}

func TestEmissiveTerminatesPath(t *testing.T) {
	e := NewEmissive(vecmath.NewVec3(1, 1, 1), 2.0)
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(0, -1, 0))

	result, next := e.MaterialAt(ray, vecmath.NewVec3(0, 1, 0), rng)

	assert.Equal(t, vecmath.NewVec3(2, 2, 2), result.Emission)
	assert.Nil(t, next)
}

func TestSolidColorBackgroundIsDirectionInvariant(t *testing.T) {
	b := NewSolidColorBackground(vecmath.NewVec3(0.1, 0.2, 0.3))
	r1 := vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(1, 0, 0))
	r2 := vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(-1, 0, 1).Normalize())
	assert.Equal(t, b.Color, b.EmissionAt(r1))
	assert.Equal(t, b.Color, b.EmissionAt(r2))
}

func TestStarSkyBackgroundIsDeterministic(t *testing.T) {
	b := NewStarSkyBackground(0.01, 1.0)
	dir := vecmath.NewVec3(0.3, 0.5, 0.8).Normalize()
	ray := vecmath.NewRay(vecmath.Zero(), dir)
	a := b.EmissionAt(ray)
	c := b.EmissionAt(ray)
	assert.Equal(t, a, c)
}

func TestStarSkyBackgroundGlowsNearEquator(t *testing.T) {
	b := NewStarSkyBackground(0, 1.0)
	equator := b.EmissionAt(vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(1, 0, 0)))
	pole := b.EmissionAt(vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(0, 1, 0)))
	assert.Greater(t, equator.Luminance(), pole.Luminance())
}

func TestHomogeneousFogDensityAtIsConstant(t *testing.T) {
	f := NewHomogeneousFog(vecmath.NewVec3(1, 1, 1), 0.5, 0.1)
	assert.InDelta(t, 0.5, f.DensityAt(vecmath.Zero()), 1e-9)
	assert.InDelta(t, 0.5, f.DensityAt(vecmath.NewVec3(100, 0, 0)), 1e-9)
}

func TestHomogeneousFogMaterialAtContinuesUndeflected(t *testing.T) {
	f := NewHomogeneousFog(vecmath.NewVec3(1, 1, 1), 0.5, 0.1)
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(0, 0, 1))

	result, next := f.MaterialAt(ray, rng)

	assert.Equal(t, vecmath.NewVec3(1, 1, 1), result.Emission)
	assert.InDelta(t, 0.9, result.Albedo.X, 1e-9)
	assert.NotNil(t, next)
	assert.InDelta(t, ray.Direction.Z, next.Direction.Z, 1e-9)
}

func TestRegistryRoundTripsSolidShader(t *testing.T) {
	r := NewRegistry()
	s := NewBasicSolid(vecmath.NewVec3(1, 0, 0))
	h := r.RegisterSolid(s)

	resolved, ok := r.Solid(h)
	assert.True(t, ok)
	assert.Same(t, s, resolved)
}

func TestRegistrySharedHandleResolvesToSameInstance(t *testing.T) {
	r := NewRegistry()
	s := NewBasicSolid(vecmath.NewVec3(0, 1, 0))
	h := r.RegisterSolid(s)

	a, _ := r.Solid(h)
	b, _ := r.Solid(h)
	assert.Same(t, a, b)
}

func TestRegistryUnknownHandleMisses(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Solid(ShaderHandle{})
	assert.False(t, ok)
}
