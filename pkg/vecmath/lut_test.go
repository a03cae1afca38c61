package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTableInterpolates(t *testing.T) {
	lut := NewLookupTable([]float64{0, 10}, []f64{0, 100})
	assert.InDelta(t, 50.0, float64(lut.Lookup(5)), 1e-9)
}

func TestLookupTableClampsOutsideRange(t *testing.T) {
	lut := NewLookupTable([]float64{0, 10}, []f64{0, 100})
	assert.InDelta(t, 0.0, float64(lut.Lookup(-5)), 1e-9)
	assert.InDelta(t, 100.0, float64(lut.Lookup(50)), 1e-9)
}

func TestLookupTableSortsUnsortedInput(t *testing.T) {
	lut := NewLookupTable([]float64{10, 0, 5}, []f64{100, 0, 50})
	assert.InDelta(t, 25.0, float64(lut.Lookup(2.5)), 1e-9)
}

func TestGaussianLUTIsMonotonic(t *testing.T) {
	prev := float64(GaussianLUT.Lookup(0.01))
	for _, u := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		v := float64(GaussianLUT.Lookup(u))
		assert.Greater(t, v, prev)
		prev = v
	}
}

func TestGaussianLUTMedianIsNearZero(t *testing.T) {
	assert.InDelta(t, 0.0, float64(GaussianLUT.Lookup(0.5)), 0.05)
}

func TestBlackbodyColorEndpoints(t *testing.T) {
	cold := BlackbodyColor(500)
	hot := BlackbodyColor(6500)
	assert.Less(t, cold.Luminance(), hot.Luminance())
	assert.InDelta(t, 1.0, hot.X, 1e-9)
	assert.InDelta(t, 1.0, hot.Y, 1e-9)
	assert.InDelta(t, 1.0, hot.Z, 1e-9)
}

func TestBlackbodyColorClampsOutsideRange(t *testing.T) {
	assert.Equal(t, BlackbodyColor(500), BlackbodyColor(100))
	assert.Equal(t, BlackbodyColor(6500), BlackbodyColor(10000))
}
