// Package sceneio is a minimal, replaceable stand-in for the scene-file
// parser spec.md treats as an external collaborator (§1: "it produces a
// Scene value"). It decodes a small JSON scene description into a
// *scene.Scene so the CLI and interactive front ends are runnable
// end-to-end without a production scene format or editor.
package sceneio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/scene"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// Document is the on-disk JSON shape. Build substitutes a default only for
// an omitted camera field of view (60 degrees) and an omitted star-sky
// density (0.002); every other omitted field keeps its zero value.
type Document struct {
	Camera      CameraDoc       `json:"camera"`
	Background  BackgroundDoc   `json:"background"`
	Objects     []ObjectDoc     `json:"objects"`
	Distortions []DistortionDoc `json:"distortions"`
}

// CameraDoc describes the camera's pinhole parameters and orientation.
type CameraDoc struct {
	Location [3]float64 `json:"location"`
	HorFOV   float64    `json:"hor_fov_deg"`
	Pitch    float64    `json:"pitch_deg"`
	Yaw      float64    `json:"yaw_deg"`
	Roll     float64    `json:"roll_deg"`
}

// BackgroundDoc selects and parameterizes the background shader.
type BackgroundDoc struct {
	Kind  string     `json:"kind"` // "solid" or "star_sky"
	Color [3]float64 `json:"color,omitempty"`
	Noise float64    `json:"noise_scale,omitempty"`
	Glow  float64    `json:"glow_strength,omitempty"`
}

// ShapeDoc is a tagged union of the geometry package's concrete shapes.
type ShapeDoc struct {
	Kind   string     `json:"kind"` // "sphere", "cube", "cylinder"
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius,omitempty"`
	Scale  float64    `json:"scale,omitempty"`
	Height float64    `json:"height,omitempty"`
}

// ShaderDoc is a tagged union of the material package's concrete shaders.
type ShaderDoc struct {
	Kind       string     `json:"kind"` // "basic_solid", "emissive", "fog"
	Albedo     [3]float64 `json:"albedo,omitempty"`
	Metallic   float64    `json:"metallic,omitempty"`
	Emission   [3]float64 `json:"emission,omitempty"`
	Intensity  float64    `json:"intensity,omitempty"`
	Density    float64    `json:"density,omitempty"`
	Absorption float64    `json:"absorption,omitempty"`
}

// ObjectDoc pairs a shape with either a solid or volumetric shader.
type ObjectDoc struct {
	Shape      ShapeDoc  `json:"shape"`
	Volumetric bool      `json:"volumetric,omitempty"`
	Shader     ShaderDoc `json:"shader"`
}

// DistortionDoc describes one gravitational-lensing field.
type DistortionDoc struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Strength float64    `json:"strength"`
}

func vec(v [3]float64) vecmath.Vec3 {
	return vecmath.NewVec3(v[0], v[1], v[2])
}

// Load reads and decodes a Document from path and builds a *scene.Scene
// from it.
func Load(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a Document from r and builds a *scene.Scene from it.
func Decode(r io.Reader) (*scene.Scene, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("sceneio: decode scene: %w", err)
	}
	return Build(doc)
}

// Build turns a decoded Document into a *scene.Scene, resolving each
// tagged shape/shader/background variant into its concrete type.
func Build(doc Document) (*scene.Scene, error) {
	fov := doc.Camera.HorFOV
	if fov == 0 {
		fov = 60
	}
	cam := scene.NewCameraWithEulerAngles(vec(doc.Camera.Location), fov, doc.Camera.Pitch, doc.Camera.Yaw, doc.Camera.Roll)

	background, err := buildBackground(doc.Background)
	if err != nil {
		return nil, err
	}

	objects := make([]scene.Object, 0, len(doc.Objects))
	for i, od := range doc.Objects {
		shape, err := buildShape(od.Shape)
		if err != nil {
			return nil, fmt.Errorf("sceneio: object %d: %w", i, err)
		}

		if od.Volumetric {
			shader, err := buildVolumetric(od.Shader)
			if err != nil {
				return nil, fmt.Errorf("sceneio: object %d: %w", i, err)
			}
			objects = append(objects, scene.NewObject(shape, scene.NewVolumetricShading(shader)))
			continue
		}

		shader, err := buildSolid(od.Shader)
		if err != nil {
			return nil, fmt.Errorf("sceneio: object %d: %w", i, err)
		}
		objects = append(objects, scene.NewObject(shape, scene.NewSolidShading(shader)))
	}

	distortions := make([]scene.Distortion, 0, len(doc.Distortions))
	for _, dd := range doc.Distortions {
		distortions = append(distortions, scene.NewDistortion(vec(dd.Center), dd.Radius, dd.Strength))
	}

	return scene.NewScene(cam, background, objects, distortions), nil
}

func buildShape(d ShapeDoc) (geometry.Shape, error) {
	switch d.Kind {
	case "sphere":
		return geometry.NewSphere(vec(d.Center), d.Radius), nil
	case "cube":
		return geometry.NewCube(vec(d.Center), d.Scale), nil
	case "cylinder":
		return geometry.NewCylinder(vec(d.Center), d.Radius, d.Height), nil
	default:
		return nil, fmt.Errorf("sceneio: unknown shape kind %q", d.Kind)
	}
}

func buildBackground(d BackgroundDoc) (material.BackgroundShader, error) {
	switch d.Kind {
	case "", "solid":
		return material.NewSolidColorBackground(vec(d.Color)), nil
	case "star_sky":
		noise := d.Noise
		if noise == 0 {
			noise = 0.002
		}
		return material.NewStarSkyBackground(noise, d.Glow), nil
	default:
		return nil, fmt.Errorf("sceneio: unknown background kind %q", d.Kind)
	}
}

func buildSolid(d ShaderDoc) (material.SolidShader, error) {
	switch d.Kind {
	case "", "basic_solid":
		s := material.NewBasicSolid(vec(d.Albedo))
		if d.Emission != [3]float64{} {
			s = s.WithEmission(vec(d.Emission))
		}
		if d.Metallic != 0 {
			s = s.WithMetallic(d.Metallic)
		}
		return s, nil
	case "emissive":
		return material.NewEmissive(vec(d.Emission), d.Intensity), nil
	default:
		return nil, fmt.Errorf("sceneio: unknown solid shader kind %q", d.Kind)
	}
}

func buildVolumetric(d ShaderDoc) (material.VolumetricShader, error) {
	switch d.Kind {
	case "", "fog":
		return material.NewHomogeneousFog(vec(d.Albedo), d.Density, d.Absorption), nil
	default:
		return nil, fmt.Errorf("sceneio: unknown volumetric shader kind %q", d.Kind)
	}
}
