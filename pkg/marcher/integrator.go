package marcher

import (
	"github.com/nkall/duskmarch/pkg/material"
	"github.com/nkall/duskmarch/pkg/scene"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// RenderMode selects what a hit resolves to: the fully shaded color, a
// visualization of the surface normal, or (handled entirely outside the
// integrator) a step-count heatmap.
type RenderMode int

const (
	// Shaded renders the full recursive path-traced color.
	Shaded RenderMode = iota
	// Normal renders the hit surface's normal, remapped to [0,1].
	Normal
	// Samples renders nothing per-ray; the CLI renderer derives its output
	// from the marcher's step counts instead.
	Samples
)

// RayResult is the outcome of tracing one camera ray to completion: the
// total number of march steps it took and the color it resolved to.
type RayResult struct {
	Steps int
	Color vecmath.Vec3
}

// ColorForRay recursively traces ray through the scene, accumulating
// emission and attenuating by albedo at each bounce, until it terminates
// (background, lost ray, emissive hit, or MaxDepth).
func (m RayMarcher) ColorForRay(ray vecmath.Ray, sc *scene.Scene, maxStep float64, depth int, rng vecmath.Rng) RayResult {
	if depth >= m.MaxDepth {
		return RayResult{Steps: ray.StepsTaken, Color: vecmath.Zero()}
	}

	result := m.marchToObject(&ray, sc, maxStep, rng)

	var mat material.MaterialResult
	switch result.kind {
	case marchObject:
		shaded, nextRay := m.getColor(ray, result.object, rng)
		if nextRay == nil {
			return RayResult{Steps: ray.StepsTaken, Color: shaded.Emission}
		}
		ray = *nextRay
		mat = shaded
	case marchBackground:
		return RayResult{Steps: ray.StepsTaken, Color: sc.Background.EmissionAt(ray)}
	case marchNone:
		return RayResult{Steps: ray.StepsTaken, Color: vecmath.Zero()}
	}

	reflected := m.ColorForRay(ray, sc, maxStep, depth+1, rng)
	color := mat.Emission.Add(mat.Albedo.MultiplyVec(reflected.Color))

	return RayResult{Steps: reflected.Steps, Color: color}
}

// getColor shades a confirmed hit according to m.Mode: Shaded passes the
// object's own material straight through, Normal replaces it with the
// surface normal remapped to [0,1] (while keeping the object's own
// continuation ray so step counts and path length stay comparable across
// modes), and Samples discards color entirely.
func (m RayMarcher) getColor(ray vecmath.Ray, obj *scene.Object, rng vecmath.Rng) (material.MaterialResult, *vecmath.Ray) {
	mat, nextRay := obj.Shade(ray, rng)

	switch m.Mode {
	case Shaded:
		return mat, nextRay
	case Normal:
		normal := obj.Shape.Normal(ray.Location)
		remapped := normal.Multiply(0.5).Add(vecmath.FromValue(0.5))
		return material.MaterialResult{Emission: remapped}, nextRay
	case Samples:
		return material.MaterialResult{}, nextRay
	default:
		return mat, nextRay
	}
}
