package scene

import (
	"math/rand"
	"testing"

	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestObjectShadeDispatchesSolid(t *testing.T) {
	sphere := geometry.NewSphere(vecmath.Zero(), 1.0)
	obj := NewObject(sphere, NewSolidShading(material.NewBasicSolid(vecmath.NewVec3(1, 0, 0))))
	rng := rand.New(rand.NewSource(1))

	ray := vecmath.NewRay(vecmath.NewVec3(1, 0, 0), vecmath.NewVec3(-1, 0, 0))
	result, next := obj.Shade(ray, rng)
	assert.Equal(t, vecmath.NewVec3(1, 0, 0), result.Albedo)
	assert.NotNil(t, next)
}

func TestObjectShadeDispatchesVolumetric(t *testing.T) {
	sphere := geometry.NewSphere(vecmath.Zero(), 1.0)
	fog := material.NewHomogeneousFog(vecmath.NewVec3(1, 1, 1), 1.0, 0.0)
	obj := NewObject(sphere, NewVolumetricShading(fog))
	rng := rand.New(rand.NewSource(1))

	ray := vecmath.NewRay(vecmath.Zero(), vecmath.NewVec3(0, 0, 1))
	result, next := obj.Shade(ray, rng)
	assert.Equal(t, vecmath.NewVec3(1, 1, 1), result.Emission)
	assert.NotNil(t, next)
}
