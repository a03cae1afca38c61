package vecmath

import "math"

// gaussPdf is the standard normal probability density function.
func gaussPdf(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

// buildGaussianLUT builds the inverse-CDF lookup table used to turn a
// uniform random value in [0,1] into a standard-normal sample, matching the
// original's `gen_gauss_dist` (trapezoidal integration of the Gaussian PDF
// over x in [-5, 5] at step 0.01, keyed by the running CDF value).
func buildGaussianLUT() LookupTable[f64] {
	const lo, hi, step = -5.0, 5.0, 0.01
	n := int(math.Round((hi-lo)/step)) + 1

	keys := make([]float64, 0, n)
	values := make([]float64, 0, n)

	cdf := 0.0
	prevX := lo
	prevPdf := gaussPdf(lo)
	keys = append(keys, cdf)
	values = append(values, prevX)

	for i := 1; i < n; i++ {
		x := lo + float64(i)*step
		pdf := gaussPdf(x)
		cdf += (prevPdf + pdf) / 2 * step
		keys = append(keys, cdf)
		values = append(values, x)
		prevX, prevPdf = x, pdf
	}
	_ = prevX

	f64Values := make([]f64, len(values))
	for i, v := range values {
		f64Values[i] = f64(v)
	}
	return NewLookupTableFromSorted(keys, f64Values)
}

// buildBlackbodyLUT builds the temperature-to-color table used by
// background/emission shaders that render a physical light source by
// temperature, matching the original's `gen_bb_dist`: five fixed
// (temperature, linear RGB) control points from a near-black 500K ember to a
// pure white 6500K point.
func buildBlackbodyLUT() LookupTable[vec3Lerpable] {
	keys := []float64{500, 1500, 3000, 4500, 6500}
	colors := []Vec3{
		NewVec3(0.10, 0.01, 0.0),
		NewVec3(1.00, 0.30, 0.0),
		NewVec3(1.00, 0.70, 0.35),
		NewVec3(1.00, 0.90, 0.80),
		NewVec3(1.00, 1.00, 1.00),
	}
	values := make([]vec3Lerpable, len(colors))
	for i, c := range colors {
		values[i] = vec3Lerpable(c)
	}
	return NewLookupTableFromSorted(keys, values)
}

// GaussianLUT and BlackbodyLUT are built once at package initialization and
// treated as read-only afterward, exactly as the original treats its
// `GAUSS_LUT`/`BLACKBODY_LUT` statics.
var (
	GaussianLUT  = buildGaussianLUT()
	BlackbodyLUT = buildBlackbodyLUT()
)

// SampleGaussian maps a uniform random value in [0,1) to a standard-normal
// sample via the inverse-CDF lookup table.
func SampleGaussian(u float64) float64 {
	return float64(GaussianLUT.Lookup(u))
}

// BlackbodyColor returns the linear RGB color radiated by a blackbody at the
// given temperature in Kelvin, clamped to the table's supported range.
func BlackbodyColor(temperatureK float64) Vec3 {
	return Vec3(BlackbodyLUT.Lookup(temperatureK))
}
