package scene

import (
	"testing"

	"github.com/nkall/duskmarch/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestDistortionStrengthFallsOffWithDistance(t *testing.T) {
	d := NewDefaultDistortion(vecmath.Zero())
	near := d.StrengthAt(vecmath.NewVec3(6, 0, 0))
	far := d.StrengthAt(vecmath.NewVec3(60, 0, 0))
	assert.Greater(t, near, far)
}

func TestDistortionForcePointsTowardCenter(t *testing.T) {
	d := NewDefaultDistortion(vecmath.Zero())
	p := vecmath.NewVec3(10, 0, 0)
	force := d.Force(p, 1.0)
	assert.Less(t, force.X, 0.0)
	assert.InDelta(t, 0.0, force.Y, 1e-9)
	assert.InDelta(t, 0.0, force.Z, 1e-9)
}

func TestDistortionForceScalesWithStepSize(t *testing.T) {
	d := NewDefaultDistortion(vecmath.Zero())
	p := vecmath.NewVec3(10, 0, 0)
	small := d.Force(p, 1.0)
	large := d.Force(p, 2.0)
	assert.InDelta(t, small.X*2, large.X, 1e-9)
}

func TestDefaultDistortionMatchesConstants(t *testing.T) {
	d := NewDefaultDistortion(vecmath.Zero())
	assert.InDelta(t, DefaultDistortionStrength, d.Strength, 1e-9)
	assert.InDelta(t, DefaultDistortionRadius, d.Shape.Radius, 1e-9)
}
