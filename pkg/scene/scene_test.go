package scene

import (
	"testing"

	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestMaxPossibleStepIsZeroForEmptyScene(t *testing.T) {
	s := NewEmptyScene()
	assert.Equal(t, 0.0, s.MaxPossibleStep(vecmath.Zero()))
}

func TestMaxPossibleStepCoversBoundingBox(t *testing.T) {
	sphere := geometry.NewSphere(vecmath.Zero(), 1.0)
	obj := NewObject(sphere, NewSolidShading(material.NewBasicSolid(vecmath.Zero())))
	s := NewScene(NewCamera(vecmath.NewVec3(0, 0, 10), 60), material.NewSolidColorBackground(vecmath.Zero()), []Object{obj}, nil)

	step := s.MaxPossibleStep(vecmath.NewVec3(0, 0, 10))
	assert.Greater(t, step, 9.0)
}

func TestActiveDistortionsFiltersDistantOnes(t *testing.T) {
	near := NewDefaultDistortion(vecmath.Zero())
	far := NewDefaultDistortion(vecmath.NewVec3(10000, 0, 0))
	s := NewScene(NewCamera(vecmath.Zero(), 60), material.NewSolidColorBackground(vecmath.Zero()), nil, []Distortion{near, far})

	active := s.ActiveDistortions(vecmath.NewVec3(6, 0, 0))
	assert.Len(t, active, 1)
}

func TestBuiltinScenesConstructWithoutPanicking(t *testing.T) {
	assert.NotPanics(t, func() {
		NewEmptyScene()
		NewDefaultScene()
		NewBlackHoleScene()
		NewCompositeShowcaseScene()
	})
}

func TestCameraOverrideIsApplied(t *testing.T) {
	loc := vecmath.NewVec3(5, 5, 5)
	s := NewDefaultScene(CameraConfig{Location: &loc, HorFOV: 90})
	assert.Equal(t, loc, s.Camera.Location)
	assert.InDelta(t, 90.0, s.Camera.HorFOV, 1e-9)
}
