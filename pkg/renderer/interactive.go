package renderer

import (
	"math/rand"
	"time"

	"github.com/nkall/duskmarch/pkg/framebuffer"
	"github.com/nkall/duskmarch/pkg/marcher"
	"github.com/nkall/duskmarch/pkg/scene"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// defaultPublishThrottle is the minimum interval between front-buffer
// swaps, capping publication overhead at roughly 120 Hz per spec §4.7.
const defaultPublishThrottle = 8 * time.Millisecond

// InteractiveRenderer is the message-driven scheduler: it owns a back
// framebuffer, accumulates samples into it at a progressively finer
// resolution, and publishes to the shared front buffer through Chain on a
// throttle. It runs on its own goroutine, driven entirely by In and Out.
type InteractiveRenderer struct {
	RayMarcher    marcher.RayMarcher
	SamplesBudget int
	Threads       int
	DesiredScale  Scaling
	Filter        vecmath.PixelFilter
	Seed          int64
	Stats         RunStats
	Logger        Logger

	// PublishThrottle overrides the minimum interval between publications;
	// NewInteractiveRenderer sets it to defaultPublishThrottle.
	PublishThrottle time.Duration

	// Chain is the front/back framebuffer pair the display bridge reads
	// from. Exported so callers can wire a DisplayBridge to Chain.Front.
	Chain *framebuffer.SwapChain

	In  <-chan RenderInMsg
	Out chan<- RenderOutMsg

	pool *ScanlinePool

	windowWidth, windowHeight int
	scene                     *scene.Scene
	maxStep                   float64

	currentScale Scaling
	frame        Frame
	sample       int
	lastPublish  time.Time
}

// NewInteractiveRenderer creates a scheduler wired to the given message
// channels, with a 0x0 window until the first Resize arrives.
func NewInteractiveRenderer(in <-chan RenderInMsg, out chan<- RenderOutMsg) *InteractiveRenderer {
	return &InteractiveRenderer{
		RayMarcher:      marcher.NewDefaultRayMarcher(),
		SamplesBudget:   128,
		DesiredScale:    X1,
		Filter:          vecmath.NewBlackmanHarrisFilter(1),
		Seed:            1,
		PublishThrottle: defaultPublishThrottle,
		Chain:           framebuffer.NewSwapChain(1, 1),
		In:              in,
		Out:             out,
		currentScale:    X8,
	}
}

// Run drives the scheduler's main loop until In is closed or an Exit
// message arrives. It is meant to be launched on its own goroutine.
func (r *InteractiveRenderer) Run() {
	r.pool = NewScanlinePool(r.Threads)

	var pending *RenderInMsg
	for {
		var msg RenderInMsg
		if pending != nil {
			msg = *pending
			pending = nil
		} else {
			m, ok := <-r.In
			if !ok {
				return
			}
			msg = m
		}

		if msg.Kind == MsgExit {
			return
		}
		r.applyMessage(msg)

		for r.scene != nil && r.windowWidth > 0 && r.windowHeight > 0 {
			if r.sample >= r.SamplesBudget {
				break
			}

			select {
			case m := <-r.In:
				pending = &m
			default:
			}
			if pending != nil {
				break
			}

			r.sampleOnce()

			if time.Since(r.lastPublish) >= r.PublishThrottle {
				r.Chain.Publish()
				r.Out <- RenderOutMsg{Scale: r.currentScale}
				r.lastPublish = time.Now()
			}

			if r.currentScale > r.DesiredScale {
				r.currentScale = r.currentScale.Finer(r.DesiredScale)
				r.resizeForScale()
				r.sample = 0
				continue
			}
			r.sample++
		}
	}
}

// applyMessage handles a Resize or SceneChange inbound message: it
// reallocates buffers and/or replaces the scene, then resets progressive
// state to the coarsest scale per spec §4.7 step 2. Restart simply resets
// progressive state against the current scene and dimensions.
func (r *InteractiveRenderer) applyMessage(msg RenderInMsg) {
	switch msg.Kind {
	case MsgResize:
		r.windowWidth, r.windowHeight = msg.Width, msg.Height
		r.Chain.Resize(msg.Width, msg.Height)
	case MsgSceneChange:
		r.scene = msg.Scene
		if r.scene != nil {
			r.maxStep = r.scene.MaxPossibleStep(r.scene.Camera.Location)
		}
	case MsgRestart:
	}

	if r.windowWidth == 0 || r.windowHeight == 0 {
		return
	}

	r.currentScale = X8
	r.resizeForScale()
	r.sample = 0
}

// resizeForScale recomputes the down-scaled frame dimensions for
// r.currentScale and resets the pixel filter for the new accumulation.
func (r *InteractiveRenderer) resizeForScale() {
	w := r.windowWidth / r.currentScale.Scale()
	h := r.windowHeight / r.currentScale.Scale()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r.frame = Frame{Width: w, Height: h, Region: WholeRegion()}
	r.Filter.Reset()
}

// rowRng returns a deterministic per-row, per-sample random source, mirroring
// CliRenderer.rowRng so interactive and batch renders of the same scene and
// seed are reproducible.
func (r *InteractiveRenderer) rowRng(y, sample int) *rand.Rand {
	seed := r.Seed*1_000_003 + int64(y)*97 + int64(sample)
	return rand.New(rand.NewSource(seed))
}

// sampleOnce integrates one sample across the current (scaled) frame,
// reading each pixel's prior value from the published front buffer and
// writing the updated running mean into the back buffer, then blends in
// the accumulated step statistics.
func (r *InteractiveRenderer) sampleOnce() {
	ox, oy := r.Filter.Next()
	back := r.Chain.Back()
	r.Stats.ResetMax()

	r.pool.RunRows(r.frame.Height, func(y int) {
		rng := r.rowRng(y, r.sample)

		r.Chain.Front(func(front *framebuffer.FrameBuffer) {
			for x := 0; x < r.frame.Width; x++ {
				relX := (float64(x) + 0.5 + ox) / float64(r.frame.Width)
				relY := (float64(y) + 0.5 + oy) / float64(r.frame.Height)

				ray := r.scene.Camera.CastRay(relX, relY, r.frame.AspectRatio())
				result := r.RayMarcher.ColorForRay(ray, r.scene, r.maxStep, 0, rng)
				r.Stats.Add(result.Steps)

				back.BlendFrom(front, x, y, framebuffer.FromVec3(result.Color), r.sample)
			}
		})
	})
}
