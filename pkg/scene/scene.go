package scene

import (
	"math"

	"github.com/nkall/duskmarch/pkg/geometry"
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// Scene is the complete set of objects, distortion fields, camera, and
// background a frame is rendered against.
type Scene struct {
	Objects     []Object
	Distortions []Distortion
	Camera      Camera
	Background  material.BackgroundShader
}

// NewScene creates a Scene from its parts.
func NewScene(camera Camera, background material.BackgroundShader, objects []Object, distortions []Distortion) *Scene {
	return &Scene{Camera: camera, Background: background, Objects: objects, Distortions: distortions}
}

// MaxPossibleStep returns an upper bound on how far a ray from origin could
// usefully march before it must have either hit an object or escaped every
// bounding box in the scene: every object and distortion bbox is folded into
// a box that also contains origin itself, and the diagonal of that box is
// the bound, so the marcher never needs to take a single step larger than
// the scene itself.
func (s *Scene) MaxPossibleStep(origin vecmath.Vec3) float64 {
	boxes := make([]geometry.AABB, 0, len(s.Objects)+len(s.Distortions))
	for _, obj := range s.Objects {
		boxes = append(boxes, obj.Shape.BoundingBox())
	}
	for _, d := range s.Distortions {
		boxes = append(boxes, d.Shape.BoundingBox())
	}

	minX, maxX := origin.X, origin.X
	minY, maxY := origin.Y, origin.Y
	minZ, maxZ := origin.Z, origin.Z
	for _, b := range boxes {
		minX = math.Min(minX, b.XMin)
		maxX = math.Max(maxX, b.XMax)
		minY = math.Min(minY, b.YMin)
		maxY = math.Max(maxY, b.YMax)
		minZ = math.Min(minZ, b.ZMin)
		maxZ = math.Max(maxZ, b.ZMax)
	}

	deltaX := maxX - minX
	deltaY := maxY - minY
	deltaZ := maxZ - minZ

	deltaXY := math.Sqrt(deltaX*deltaX + deltaY*deltaY)
	return math.Sqrt(deltaXY*deltaXY + deltaZ*deltaZ)
}

// ActiveDistortions returns the distortions whose surface lies within four
// radii of p. The marcher does not call it: it keeps its own per-step list
// of distortions containing the ray (Dist <= 0) and suppresses AABB culling
// whenever that list is non-empty.
func (s *Scene) ActiveDistortions(p vecmath.Vec3) []Distortion {
	active := make([]Distortion, 0, len(s.Distortions))
	for _, d := range s.Distortions {
		if d.Shape.Dist(p) < d.Shape.Radius*4 {
			active = append(active, d)
		}
	}
	return active
}
