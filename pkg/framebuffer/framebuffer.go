package framebuffer

// FrameBuffer is a flat, row-major grid of accumulated pixel samples.
type FrameBuffer struct {
	Width, Height int
	buffer        []Pixel
}

// New creates a FrameBuffer of the given dimensions, zero-initialized.
func New(width, height int) *FrameBuffer {
	return &FrameBuffer{Width: width, Height: height, buffer: make([]Pixel, width*height)}
}

func (f *FrameBuffer) index(x, y int) int {
	return y*f.Width + x
}

// At returns the pixel at (x, y).
func (f *FrameBuffer) At(x, y int) Pixel {
	return f.buffer[f.index(x, y)]
}

// Set writes the pixel at (x, y).
func (f *FrameBuffer) Set(x, y int, p Pixel) {
	f.buffer[f.index(x, y)] = p
}

// Blend folds a new sample into the running mean at (x, y), matching
// x_{n+1} = x_n * n/(n+1) + sample * 1/(n+1), where n is the sample count
// already accumulated (sampleIndex, zero-based).
func (f *FrameBuffer) Blend(x, y int, sample Pixel, sampleIndex int) {
	n := float32(sampleIndex)
	weightOld := n / (n + 1)
	weightNew := 1 / (n + 1)
	idx := f.index(x, y)
	f.buffer[idx] = f.buffer[idx].Multiply(weightOld).Add(sample.Multiply(weightNew))
}

// Clear resets every pixel to zero.
func (f *FrameBuffer) Clear() {
	for i := range f.buffer {
		f.buffer[i] = Pixel{}
	}
}

// AsSlice returns the buffer's backing storage directly, for callers
// (tonemapping, the websocket bridge) that need to scan every pixel without
// per-pixel method-call overhead. Callers must not retain or mutate it
// beyond the current frame.
func (f *FrameBuffer) AsSlice() []Pixel {
	return f.buffer
}

// CopyFrom overwrites f's contents with src's. Both buffers must have the
// same dimensions.
func (f *FrameBuffer) CopyFrom(src *FrameBuffer) {
	copy(f.buffer, src.buffer)
}

// BlendFrom reads the previous sample at (x, y) from src and writes the
// updated running mean into f at the same coordinate. This is the
// interactive renderer's read/write split (spec §4.7): the back buffer
// accumulates against the front buffer's last published value rather than
// its own, so publishing is a pointer swap instead of a copy.
func (f *FrameBuffer) BlendFrom(src *FrameBuffer, x, y int, sample Pixel, sampleIndex int) {
	n := float32(sampleIndex)
	weightOld := n / (n + 1)
	weightNew := 1 / (n + 1)
	f.Set(x, y, src.At(x, y).Multiply(weightOld).Add(sample.Multiply(weightNew)))
}
