// Package marcher implements the signed-distance-field ray marcher and the
// recursive path integrator built on top of it.
package marcher

import (
	"math"

	"github.com/nkall/duskmarch/pkg/scene"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// distortionDistanceFloor is the minimum step distance attributed to an
// active distortion field, so marching near (or inside) a distortion's
// sphere never stalls on a vanishingly small step.
const distortionDistanceFloor = 0.1

// volumetricInsideStep is the fixed step taken once a ray is confirmed
// inside a volumetric object (object distance < 0).
const volumetricInsideStep = 0.01

// volumetricApproachFloor is the minimum step attributed to a volumetric
// object the ray has not yet entered.
const volumetricApproachFloor = 0.002

// hitEpsilon is the distance below which the marcher treats the nearest
// solid object as hit.
const hitEpsilon = 0.00001

// lostStrengthThreshold is the distortion strength beyond which a ray is
// considered lost (swallowed) rather than merely deflected.
const lostStrengthThreshold = 9.0

// RayMarcher owns the configuration for both the per-step march and the
// recursive path integrator built on top of it.
type RayMarcher struct {
	Mode     RenderMode
	Samples  int
	MaxSteps int
	MaxDepth int
}

// NewDefaultRayMarcher returns a RayMarcher with the same defaults as the
// original (Shaded mode, 128 samples, 2<<16 max steps, depth 16).
func NewDefaultRayMarcher() RayMarcher {
	return RayMarcher{Mode: Shaded, Samples: 128, MaxSteps: 2 << 16, MaxDepth: 16}
}

type marchKind int

const (
	marchObject marchKind = iota
	marchBackground
	marchNone
)

type marchResult struct {
	kind   marchKind
	object *scene.Object
}

// marchToObject advances ray step by step until it hits an object, escapes
// the scene (exceeds maxStep), is lost to a distortion, or exhausts
// MaxSteps. ray is mutated in place: its location and direction reflect the
// final march state in every outcome.
func (m RayMarcher) marchToObject(ray *vecmath.Ray, sc *scene.Scene, maxStep float64, rng vecmath.Rng) marchResult {
	active := make([]scene.Distortion, 0, len(sc.Distortions))

	i := 0
	for {
		dst := math.MaxFloat64
		active = active[:0]

		for _, d := range sc.Distortions {
			if !d.Shape.CanRayHit(*ray) {
				continue
			}
			dist := d.Shape.Dist(ray.Location)
			if dist <= 0 {
				active = append(active, d)
			}
			dst = math.Min(dst, math.Max(dist, distortionDistanceFloor))
		}

		var obj *scene.Object
		for idx := range sc.Objects {
			o := &sc.Objects[idx]

			switch o.Shading.Kind {
			case scene.SolidShading:
				if !o.Shape.CanRayHit(*ray) && len(active) == 0 {
					continue
				}
				objDist := o.Shape.Dist(ray.Location)
				if objDist < dst {
					dst = math.Min(dst, objDist)
					obj = o
				}
			case scene.VolumetricShading:
				objDist := o.Shape.Dist(ray.Location)
				if objDist < 0 {
					dst = math.Min(dst, volumetricInsideStep)
					r := rng.Float64()
					if o.Shading.Volumetric.DensityAt(ray.Location)*dst > r {
						return marchResult{kind: marchObject, object: o}
					}
				} else if objDist < dst {
					dst = math.Min(dst, math.Max(objDist, volumetricApproachFloor))
				}
			}
		}

		if obj != nil && dst < hitEpsilon {
			return marchResult{kind: marchObject, object: obj}
		}

		for _, d := range active {
			strength := d.StrengthAt(ray.Location)
			if strength > lostStrengthThreshold {
				return marchResult{kind: marchNone}
			}

			force := d.Force(ray.Location, dst)
			newDir := ray.Direction.Add(force).Normalize()

			if ray.Direction.Dot(newDir) < 0 {
				return marchResult{kind: marchNone}
			}
			ray.Direction = newDir
		}

		if dst > maxStep {
			return marchResult{kind: marchBackground}
		}

		if i >= m.MaxSteps {
			return marchResult{kind: marchNone}
		}
		i++

		ray.Advance(dst)
	}
}
