package framebuffer

import (
	"testing"

	"github.com/nkall/duskmarch/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestNewSwapChainStartsZeroed(t *testing.T) {
	sc := NewSwapChain(2, 2)
	sc.Front(func(fb *FrameBuffer) {
		assert.Equal(t, Pixel{}, fb.At(0, 0))
	})
}

func TestPublishExposesBackAsFront(t *testing.T) {
	sc := NewSwapChain(1, 1)
	p := FromVec3(vecmath.NewVec3(1, 0, 0))
	sc.Back().Set(0, 0, p)

	sc.Publish()

	sc.Front(func(fb *FrameBuffer) {
		assert.Equal(t, p, fb.At(0, 0))
	})
}

func TestPublishIsPointerSwapNotCopy(t *testing.T) {
	sc := NewSwapChain(1, 1)
	firstBack := sc.Back()
	sc.Publish()

	// The buffer that was "back" is now reachable only through Front.
	sc.Front(func(fb *FrameBuffer) {
		assert.Same(t, firstBack, fb)
	})
}

func TestResizeReallocatesBothBuffersZeroed(t *testing.T) {
	sc := NewSwapChain(2, 2)
	sc.Back().Set(0, 0, FromVec3(vecmath.NewVec3(1, 1, 1)))
	sc.Publish()

	sc.Resize(4, 4)

	assert.Equal(t, 4, sc.Back().Width)
	sc.Front(func(fb *FrameBuffer) {
		assert.Equal(t, 4, fb.Width)
		assert.Equal(t, Pixel{}, fb.At(0, 0))
	})
}

func TestBlendFromReadsSourceWritesDestination(t *testing.T) {
	dst := New(1, 1)
	src := New(1, 1)
	src.Set(0, 0, FromVec3(vecmath.NewVec3(1, 0, 0)))

	dst.BlendFrom(src, 0, 0, FromVec3(vecmath.NewVec3(0, 1, 0)), 1)

	result := dst.At(0, 0)
	assert.InDelta(t, 0.5, result.R, 1e-6)
	assert.InDelta(t, 0.5, result.G, 1e-6)
	// src is untouched by the blend.
	assert.Equal(t, float32(1), src.At(0, 0).R)
}
