package scene

import (
	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// CameraConfig holds optional overrides for a built-in scene's camera,
// mirroring the teacher's CameraConfig merge-override idiom
// (pkg/scene/default_scene.go in the reference raytracer): any zero field
// is replaced by the scene builder's default before the camera is built.
type CameraConfig struct {
	Location *vecmath.Vec3
	HorFOV   float64
}

func (c CameraConfig) withDefaults(defaultLocation vecmath.Vec3, defaultFOV float64) (vecmath.Vec3, float64) {
	location := defaultLocation
	if c.Location != nil {
		location = *c.Location
	}
	fov := defaultFOV
	if fov == 0 {
		fov = defaultFOV
	}
	if c.HorFOV != 0 {
		fov = c.HorFOV
	}
	return location, fov
}

// NewEmptyScene creates a Scene with a solid-color background and no
// objects or distortions, useful as a baseline for tests and for scenes
// that only exercise the background shader.
func NewEmptyScene(cameraOverrides ...CameraConfig) *Scene {
	cfg := firstOrZero(cameraOverrides)
	location, fov := cfg.withDefaults(vecmath.NewVec3(0, 0, 5), 60)
	cam := NewCamera(location, fov)
	return NewScene(cam, material.NewSolidColorBackground(vecmath.NewVec3(0.02, 0.02, 0.02)), nil, nil)
}

// NewDefaultScene builds a single backlit sphere against a star-sky
// background — the scene used by the end-to-end "single sphere, no
// distortion" scenario.
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	cfg := firstOrZero(cameraOverrides)
	location, fov := cfg.withDefaults(vecmath.NewVec3(0, 0, 5), 60)
	cam := NewCamera(location, fov)

	sphere := geometry.NewSphere(vecmath.Zero(), 1.0)
	shading := NewSolidShading(material.NewBasicSolid(vecmath.NewVec3(0.7, 0.7, 0.75)))
	objects := []Object{NewObject(sphere, shading)}

	background := material.NewStarSkyBackground(0.002, 0.4)
	return NewScene(cam, background, objects, nil)
}

// NewBlackHoleScene builds the accretion-disk-free black hole scenario: a
// single strong distortion at the origin with no objects for it to hide,
// so every ray either escapes (deflected) or is lost once it crosses the
// strength > 9.0 threshold.
func NewBlackHoleScene(cameraOverrides ...CameraConfig) *Scene {
	cfg := firstOrZero(cameraOverrides)
	location, fov := cfg.withDefaults(vecmath.NewVec3(0, 2, 15), 50)
	cam := NewCamera(location, fov)

	distortion := NewDistortion(vecmath.Zero(), 1.5, 4.0)
	background := material.NewStarSkyBackground(0.004, 0.6)
	return NewScene(cam, background, nil, []Distortion{distortion})
}

// NewCompositeShowcaseScene builds a scene exercising the Composite boolean
// shapes: a cube with a spherical bite taken out of it.
func NewCompositeShowcaseScene(cameraOverrides ...CameraConfig) *Scene {
	cfg := firstOrZero(cameraOverrides)
	location, fov := cfg.withDefaults(vecmath.NewVec3(0, 1, 6), 55)
	cam := NewCamera(location, fov)

	cube := geometry.NewCube(vecmath.Zero(), 2.0)
	bite := geometry.NewSphere(vecmath.NewVec3(0.8, 0.8, 0.8), 1.0)
	shape := geometry.NewComposite(cube, bite, geometry.Difference)
	shading := NewSolidShading(material.NewBasicSolid(vecmath.NewVec3(0.6, 0.4, 0.2)))
	objects := []Object{NewObject(shape, shading)}

	background := material.NewSolidColorBackground(vecmath.NewVec3(0.05, 0.05, 0.08))
	return NewScene(cam, background, objects, nil)
}

func firstOrZero(overrides []CameraConfig) CameraConfig {
	if len(overrides) == 0 {
		return CameraConfig{}
	}
	return overrides[0]
}
