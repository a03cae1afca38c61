package marcher

import (
	"math/rand"
	"testing"

	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/scene"
	"github.com/nkall/duskmarch/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func singleSphereScene() *scene.Scene {
	sphere := geometry.NewSphere(vecmath.Zero(), 1.0)
	shading := scene.NewSolidShading(material.NewBasicSolid(vecmath.NewVec3(0.5, 0.5, 0.5)))
	obj := scene.NewObject(sphere, shading)
	cam := scene.NewCamera(vecmath.NewVec3(0, 0, 5), 60)
	bg := material.NewSolidColorBackground(vecmath.NewVec3(0.1, 0.1, 0.1))
	return scene.NewScene(cam, bg, []scene.Object{obj}, nil)
}

func TestMarchToObjectHitsSphereHeadOn(t *testing.T) {
	m := NewDefaultRayMarcher()
	sc := singleSphereScene()
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 5), vecmath.NewVec3(0, 0, -1))

	result := m.marchToObject(&ray, sc, 100, rng)
	assert.Equal(t, marchObject, result.kind)
	assert.NotNil(t, result.object)
}

func TestMarchToObjectEscapesToBackground(t *testing.T) {
	m := NewDefaultRayMarcher()
	sc := singleSphereScene()
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 10, 5), vecmath.NewVec3(0, 0, -1))

	result := m.marchToObject(&ray, sc, 20, rng)
	assert.Equal(t, marchBackground, result.kind)
}

func TestColorForRayBackgroundReturnsBackgroundColor(t *testing.T) {
	m := NewDefaultRayMarcher()
	sc := singleSphereScene()
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 10, 5), vecmath.NewVec3(0, 0, -1))

	result := m.ColorForRay(ray, sc, 20, 0, rng)
	assert.Equal(t, vecmath.NewVec3(0.1, 0.1, 0.1), result.Color)
}

func TestColorForRayHitsSphereAndAccumulatesColor(t *testing.T) {
	m := NewDefaultRayMarcher()
	m.MaxDepth = 2
	sc := singleSphereScene()
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 5), vecmath.NewVec3(0, 0, -1))

	result := m.ColorForRay(ray, sc, 100, 0, rng)
	assert.GreaterOrEqual(t, result.Steps, 0)
	assert.False(t, result.Color.X < 0)
}

func TestColorForRayRespectsMaxDepth(t *testing.T) {
	m := NewDefaultRayMarcher()
	m.MaxDepth = 0
	sc := singleSphereScene()
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 5), vecmath.NewVec3(0, 0, -1))

	result := m.ColorForRay(ray, sc, 100, 0, rng)
	assert.Equal(t, vecmath.Zero(), result.Color)
}

func TestColorForRayNormalModeReturnsUnitRangeColor(t *testing.T) {
	m := NewDefaultRayMarcher()
	m.Mode = Normal
	sc := singleSphereScene()
	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 5), vecmath.NewVec3(0, 0, -1))

	result := m.ColorForRay(ray, sc, 100, 0, rng)
	assert.InDelta(t, 1.0, result.Color.Z, 0.01)
}

func TestBlackHoleDistortionDeflectsRayWithoutHit(t *testing.T) {
	m := NewDefaultRayMarcher()
	distortion := scene.NewDistortion(vecmath.Zero(), 5.0, 0.3)
	cam := scene.NewCamera(vecmath.NewVec3(0, 5, 30), 50)
	bg := material.NewSolidColorBackground(vecmath.NewVec3(0, 0, 0))
	sc := scene.NewScene(cam, bg, nil, []scene.Distortion{distortion})

	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 5, 30), vecmath.NewVec3(0, -0.05, -1).Normalize())

	result := m.marchToObject(&ray, sc, 200, rng)
	assert.NotEqual(t, vecmath.NewVec3(0, -0.05, -1).Normalize(), ray.Direction)
	_ = result
}

func TestStrongDistortionLosesRay(t *testing.T) {
	m := NewDefaultRayMarcher()
	distortion := scene.NewDistortion(vecmath.Zero(), 1.0, 50.0)
	cam := scene.NewCamera(vecmath.NewVec3(0, 0, 10), 50)
	bg := material.NewSolidColorBackground(vecmath.Zero())
	sc := scene.NewScene(cam, bg, nil, []scene.Distortion{distortion})

	rng := rand.New(rand.NewSource(1))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 2), vecmath.NewVec3(0, 0, -1))

	result := m.marchToObject(&ray, sc, 200, rng)
	assert.Equal(t, marchNone, result.kind)
}
