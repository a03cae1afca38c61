package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/nkall/duskmarch/pkg/framebuffer"
	"github.com/nkall/duskmarch/pkg/marcher"
	"github.com/nkall/duskmarch/pkg/scene"
	"github.com/nkall/duskmarch/pkg/vecmath"
	"golang.org/x/image/draw"
)

// luminanceWeights are the Rec. 709 luma coefficients used by the Reinhard
// tonemap step.
var luminanceWeights = vecmath.NewVec3(0.2126, 0.7152, 0.0722)

// CliRenderer performs a single-shot, fixed-sample-count render of a scene
// into a FrameBuffer, reporting progress through a Logger as it goes.
type CliRenderer struct {
	RayMarcher marcher.RayMarcher
	Samples    int
	Threads    int
	Frame      Frame
	Filter     vecmath.PixelFilter
	Seed       int64
	Stats      RunStats
}

// NewDefaultCliRenderer matches the original's CLI defaults: 128 samples,
// library-default thread count, 1280x720 whole-frame, a Blackman-Harris
// filter at its default 1px width.
func NewDefaultCliRenderer() *CliRenderer {
	return &CliRenderer{
		RayMarcher: marcher.NewDefaultRayMarcher(),
		Samples:    128,
		Threads:    0,
		Frame:      Frame{Width: 1280, Height: 720, Region: WholeRegion()},
		Filter:     vecmath.NewBlackmanHarrisFilter(1),
		Seed:       1,
	}
}

// rowRng returns a deterministic per-row, per-sample random source, seeded
// from (r.Seed, y, sample) so a render never shares generator state across
// rows and reproduces bit-identically given the same seed and sample count.
func (r *CliRenderer) rowRng(y, sample int) *rand.Rand {
	seed := r.Seed*1_000_003 + int64(y)*97 + int64(sample)
	return rand.New(rand.NewSource(seed))
}

// Render samples sc into fb for r.Samples passes, logging per-sample
// progress to logger. fb must already be sized to r.Frame's dimensions.
func (r *CliRenderer) Render(sc *scene.Scene, fb *framebuffer.FrameBuffer, logger Logger) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	pool := NewScanlinePool(r.Threads)
	start := time.Now()
	maxStep := sc.MaxPossibleStep(sc.Camera.Location)
	r.Stats.ResetTotal()

	var maxStepTotal int64

	for i := 0; i < r.Samples; i++ {
		ox, oy := r.Filter.Next()
		r.Stats.ResetMax()

		pool.RunRows(r.Frame.Height, func(y int) {
			r.scanline(sc, maxStep, y, fb, i, ox, oy)
		})

		maxStepTotal += r.Stats.MaxStepsPerSample()

		elapsed := time.Since(start)
		remainingPasses := float64(r.Samples)/float64(i+1) - 1.0
		remaining := time.Duration(float64(elapsed) * remainingPasses)
		logger.Printf("\rSample %d/%d, time: %02d:%02d, remaining: %02d:%02d",
			i+1, r.Samples,
			int(elapsed.Seconds())/60, int(elapsed.Seconds())%60,
			int(remaining.Seconds())/60, int(remaining.Seconds())%60)
	}
	logger.Printf("\n")

	if r.RayMarcher.Mode == marcher.Samples {
		r.normalizeSampleHeatmap(fb)
	}

	total := time.Since(start)
	logger.Printf("Render took %.02f seconds\n", total.Seconds())
	logger.Printf("Max steps: %d\n", maxStepTotal)
	logger.Printf("Avg steps per pixel: %f\n",
		float64(r.Stats.TotalSteps())/float64(r.Frame.Width*r.Frame.Height))
}

func (r *CliRenderer) scanline(sc *scene.Scene, maxStep float64, y int, fb *framebuffer.FrameBuffer, sample int, ox, oy float64) {
	if !r.Frame.Region.Whole && (y >= r.Frame.Region.YMax || y < r.Frame.Region.YMin) {
		return
	}

	rng := r.rowRng(y, sample)

	for x := 0; x < r.Frame.Width; x++ {
		if !r.Frame.Region.Whole && (x >= r.Frame.Region.XMax || x < r.Frame.Region.XMin) {
			continue
		}

		relX := (float64(x) + 0.5 + ox) / float64(r.Frame.Width)
		relY := (float64(y) + 0.5 + oy) / float64(r.Frame.Height)

		ray := sc.Camera.CastRay(relX, relY, r.Frame.AspectRatio())
		result := r.RayMarcher.ColorForRay(ray, sc, maxStep, 0, rng)

		r.Stats.Add(result.Steps)

		if r.RayMarcher.Mode == marcher.Samples {
			fb.Set(x, y, fb.At(x, y).Add(framebuffer.Pixel{R: float32(result.Steps)}))
		} else {
			fb.Blend(x, y, framebuffer.FromVec3(result.Color), sample)
		}
	}
}

// normalizeSampleHeatmap converts the accumulated step counts left by
// Samples mode into a red/green heatmap: sample_count/256/samples maps to
// red, its complement to green.
func (r *CliRenderer) normalizeSampleHeatmap(fb *framebuffer.FrameBuffer) {
	for y := 0; y < r.Frame.Height; y++ {
		for x := 0; x < r.Frame.Width; x++ {
			p := fb.At(x, y)
			value := p.R / 256.0 / float32(r.Samples)
			fb.Set(x, y, framebuffer.Pixel{R: value, G: 1 - value, B: 0, A: 1})
		}
	}
}

// Tonemap applies the Reinhard luminance compression and gamma encoding the
// original's Shaded-mode post-process uses. Normal and Samples modes are
// passed through untouched, matching the original's post_process match.
func Tonemap(fb *framebuffer.FrameBuffer, mode marcher.RenderMode) {
	if mode != marcher.Shaded {
		return
	}

	pixels := fb.AsSlice()
	for i, p := range pixels {
		rgb := p.Vec3()
		luminance := luminanceWeights.Dot(rgb)
		if luminance <= 0 {
			continue
		}
		newLuminance := luminance / (luminance + 1.0)
		tonemapped := rgb.Multiply(newLuminance / luminance).GammaCorrect(2.2)

		gamma := framebuffer.FromVec3(tonemapped)
		gamma.A = p.A
		pixels[i] = gamma
	}
}

// clampTo8Bit converts a tonemapped linear channel value to u8 = clamp(f32,
// 0, 1) * 255, matching the spec's PNG conversion exactly.
func clampTo8Bit(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// ToImage converts fb into an image.RGBA, applying the u8 = clamp(f32,0,1)*255
// conversion per channel.
func ToImage(fb *framebuffer.FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampTo8Bit(p.R),
				G: clampTo8Bit(p.G),
				B: clampTo8Bit(p.B),
				A: clampTo8Bit(p.A),
			})
		}
	}
	return img
}

// WritePNG encodes fb as an 8-bit-per-channel RGBA PNG.
func WritePNG(w io.Writer, fb *framebuffer.FrameBuffer) error {
	return png.Encode(w, ToImage(fb))
}

// SaveThumbnail downsamples fb's already-converted image to the given
// width, preserving aspect ratio, and encodes it as a PNG — a quick-look
// preview alongside the full-resolution output.
func SaveThumbnail(w io.Writer, img *image.RGBA, thumbWidth int) error {
	bounds := img.Bounds()
	if thumbWidth <= 0 || thumbWidth >= bounds.Dx() {
		return png.Encode(w, img)
	}
	thumbHeight := bounds.Dy() * thumbWidth / bounds.Dx()
	if thumbHeight < 1 {
		thumbHeight = 1
	}

	thumb := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), img, bounds, draw.Over, nil)

	return png.Encode(w, thumb)
}
