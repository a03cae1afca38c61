package vecmath

import "math/rand"

// PixelFilter produces the sequence of sub-pixel jitter offsets a pixel's
// samples are shot through, mirroring the original's `PixelFilter` trait
// (an `Iterator<Item = (f64, f64)>` plus `set_filter_size`/`reset`).
// Offsets are in pixel-space units, centered on zero.
type PixelFilter interface {
	// SetFilterSize sets the full width of the jitter window in pixels.
	SetFilterSize(size float64)
	// Reset restarts the sample sequence for a new pixel.
	Reset()
	// Next returns the next (dx, dy) jitter offset.
	Next() (float64, float64)
}

// BoxFilter jitters samples uniformly within a square window. Its first
// sample per pixel is always the pixel center, matching the original's
// `BoxFilter` (which always yields (0.5, 0.5) before falling back to
// uniform jitter).
type BoxFilter struct {
	size    float64
	rng     *rand.Rand
	atFirst bool
}

// NewBoxFilter creates a BoxFilter seeded deterministically so repeated
// renders of the same pixel with the same seed produce identical samples.
func NewBoxFilter(seed int64) *BoxFilter {
	return &BoxFilter{size: 1.0, rng: rand.New(rand.NewSource(seed)), atFirst: true}
}

func (f *BoxFilter) SetFilterSize(size float64) { f.size = size }

func (f *BoxFilter) Reset() { f.atFirst = true }

func (f *BoxFilter) Next() (float64, float64) {
	if f.atFirst {
		f.atFirst = false
		return 0, 0
	}
	dx := (f.rng.Float64() - 0.5) * f.size
	dy := (f.rng.Float64() - 0.5) * f.size
	return dx, dy
}

// BlackmanHarrisFilter jitters samples by inverse-CDF sampling the
// Blackman-Harris window, giving a reconstruction filter with lower ringing
// than a box filter. Matches the original's `BlackmanHarrisFilter`, which
// builds its inverse-CDF table from the same window function
// (`blackman_harris` in math.rs).
type BlackmanHarrisFilter struct {
	size    float64
	rng     *rand.Rand
	lut     LookupTable[f64]
	atFirst bool
}

// NewBlackmanHarrisFilter creates a BlackmanHarrisFilter seeded
// deterministically, building its inverse-CDF table once at construction.
func NewBlackmanHarrisFilter(seed int64) *BlackmanHarrisFilter {
	return &BlackmanHarrisFilter{
		size:    1.0,
		rng:     rand.New(rand.NewSource(seed)),
		lut:     buildBlackmanHarrisLUT(),
		atFirst: true,
	}
}

func (f *BlackmanHarrisFilter) SetFilterSize(size float64) { f.size = size }

func (f *BlackmanHarrisFilter) Reset() { f.atFirst = true }

func (f *BlackmanHarrisFilter) Next() (float64, float64) {
	if f.atFirst {
		f.atFirst = false
		return 0, 0
	}
	u := float64(f.lut.Lookup(f.rng.Float64()))
	v := float64(f.lut.Lookup(f.rng.Float64()))
	return (u - 0.5) * f.size, (v - 0.5) * f.size
}

// buildBlackmanHarrisLUT builds the inverse-CDF table for the
// Blackman-Harris window over [0, 1], via the same trapezoidal-integration
// approach as the Gaussian table.
func buildBlackmanHarrisLUT() LookupTable[f64] {
	const lo, hi, step = 0.0, 1.0, 0.001
	n := int((hi-lo)/step) + 1

	keys := make([]float64, 0, n)
	values := make([]f64, 0, n)

	cdf := 0.0
	prevX := lo
	prevW := BlackmanHarris(lo)
	keys = append(keys, cdf)
	values = append(values, f64(prevX))

	for i := 1; i < n; i++ {
		x := lo + float64(i)*step
		w := BlackmanHarris(x)
		cdf += (prevW + w) / 2 * step
		keys = append(keys, cdf)
		values = append(values, f64(x))
		prevX, prevW = x, w
	}

	normalized := make([]float64, len(keys))
	total := keys[len(keys)-1]
	for i, k := range keys {
		normalized[i] = k / total
	}
	return NewLookupTableFromSorted(normalized, values)
}
