package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxFilterFirstSampleIsCenter(t *testing.T) {
	f := NewBoxFilter(1)
	dx, dy := f.Next()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestBoxFilterJittersWithinSize(t *testing.T) {
	f := NewBoxFilter(1)
	f.SetFilterSize(2.0)
	f.Next() // consume the center sample
	for i := 0; i < 50; i++ {
		dx, dy := f.Next()
		assert.LessOrEqual(t, dx, 1.0)
		assert.GreaterOrEqual(t, dx, -1.0)
		assert.LessOrEqual(t, dy, 1.0)
		assert.GreaterOrEqual(t, dy, -1.0)
	}
}

func TestBoxFilterResetReturnsToCenter(t *testing.T) {
	f := NewBoxFilter(3)
	f.Next()
	f.Next()
	f.Reset()
	dx, dy := f.Next()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestBlackmanHarrisFilterFirstSampleIsCenter(t *testing.T) {
	f := NewBlackmanHarrisFilter(1)
	dx, dy := f.Next()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestBlackmanHarrisFilterStaysWithinSize(t *testing.T) {
	f := NewBlackmanHarrisFilter(2)
	f.SetFilterSize(1.5)
	f.Next()
	for i := 0; i < 50; i++ {
		dx, dy := f.Next()
		assert.LessOrEqual(t, dx, 0.75)
		assert.GreaterOrEqual(t, dx, -0.75)
		assert.LessOrEqual(t, dy, 0.75)
		assert.GreaterOrEqual(t, dy, -0.75)
	}
}

var _ PixelFilter = (*BoxFilter)(nil)
var _ PixelFilter = (*BlackmanHarrisFilter)(nil)
