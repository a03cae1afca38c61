// Package framebuffer holds the accumulating render target: per-pixel
// running-mean color plus the double-buffered container the interactive
// renderer swaps between.
package framebuffer

import "github.com/nkall/duskmarch/pkg/vecmath"

// Pixel is a single accumulated framebuffer sample in linear color space,
// carrying alpha so partially-covered pixels (e.g. the Samples heatmap
// background) blend correctly.
type Pixel struct {
	R, G, B, A float32
}

// FromVec3 builds an opaque Pixel from a linear RGB color.
func FromVec3(v vecmath.Vec3) Pixel {
	return Pixel{R: float32(v.X), G: float32(v.Y), B: float32(v.Z), A: 1}
}

// Add returns the component-wise sum of two pixels.
func (p Pixel) Add(other Pixel) Pixel {
	return Pixel{p.R + other.R, p.G + other.G, p.B + other.B, p.A + other.A}
}

// Multiply returns p scaled by a scalar.
func (p Pixel) Multiply(scalar float32) Pixel {
	return Pixel{p.R * scalar, p.G * scalar, p.B * scalar, p.A * scalar}
}

// Vec3 returns the pixel's RGB channels as a Vec3, discarding alpha.
func (p Pixel) Vec3() vecmath.Vec3 {
	return vecmath.NewVec3(float64(p.R), float64(p.G), float64(p.B))
}
