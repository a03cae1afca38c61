package sceneio

import (
	"strings"
	"testing"

	"github.com/nkall/duskmarch/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBuildsSphereScene(t *testing.T) {
	doc := `{
		"camera": {"location": [0, 0, 5], "hor_fov_deg": 90},
		"background": {"kind": "solid", "color": [0.5, 0.5, 0.5]},
		"objects": [
			{
				"shape": {"kind": "sphere", "center": [0, 0, 0], "radius": 1},
				"shader": {"kind": "basic_solid", "albedo": [1, 0, 0]}
			}
		]
	}`

	sc, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sc.Objects, 1)
	assert.Equal(t, 90.0, sc.Camera.HorFOV)
}

func TestDecodeBuildsDistortion(t *testing.T) {
	doc := `{
		"camera": {"location": [0, 0, 10]},
		"background": {"kind": "solid"},
		"distortions": [{"center": [0, 0, 0], "radius": 5, "strength": 0.3}]
	}`

	sc, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sc.Distortions, 1)
	assert.Equal(t, 0.3, sc.Distortions[0].Strength)
}

func TestDecodeRejectsUnknownShapeKind(t *testing.T) {
	doc := `{
		"camera": {"location": [0, 0, 5]},
		"background": {"kind": "solid"},
		"objects": [{"shape": {"kind": "torus"}, "shader": {"kind": "basic_solid"}}]
	}`

	_, err := Decode(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestDecodeVolumetricObject(t *testing.T) {
	doc := `{
		"camera": {"location": [0, 0, 5]},
		"background": {"kind": "solid"},
		"objects": [
			{
				"shape": {"kind": "cube", "center": [0, 0, 0], "scale": 2},
				"volumetric": true,
				"shader": {"kind": "fog", "density": 0.5, "albedo": [1, 1, 1]}
			}
		]
	}`

	sc, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sc.Objects, 1)
	assert.Equal(t, scene.VolumetricShading, sc.Objects[0].Shading.Kind)
}

func TestDecodeMalformedJSONErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/scene.json")
	assert.Error(t, err)
}
