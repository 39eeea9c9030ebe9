package video

import "fmt"

// Sample values stored by SampleBuffer
const (
	SampleOff float32 = 0
	SampleOn  float32 = 1
)

// SampleBuffer stores one float sample per pixel in row-major order. It is
// the desktop counterpart of PackedBuffer: slower and larger, but every
// pixel can be inspected directly.
type SampleBuffer struct {
	width  int
	height int
	buffer []float32
}

// NewSampleBuffer creates a sample buffer with the specified size.
func NewSampleBuffer(width, height int) *SampleBuffer {
	return &SampleBuffer{
		width:  width,
		height: height,
		buffer: make([]float32, width*height),
	}
}

func (fb *SampleBuffer) Width() int {
	return fb.width
}

func (fb *SampleBuffer) Height() int {
	return fb.height
}

// Sample returns the raw value stored for (x, y), or SampleOff outside the buffer.
func (fb *SampleBuffer) Sample(x, y int) float32 {
	if !inBounds(fb, x, y) {
		return SampleOff
	}
	return fb.buffer[y*fb.width+x]
}

// Pixel treats any sample above one half as lit.
func (fb *SampleBuffer) Pixel(x, y int) bool {
	return fb.Sample(x, y) > 0.5
}

func (fb *SampleBuffer) SetPixel(x, y int, on bool) {
	if !inBounds(fb, x, y) {
		return
	}
	v := SampleOff
	if on {
		v = SampleOn
	}
	fb.buffer[y*fb.width+x] = v
}

func (fb *SampleBuffer) Clear() {
	clear(fb.buffer)
}

// ToSlice returns the row-major samples.
func (fb *SampleBuffer) ToSlice() []float32 {
	return fb.buffer
}

func (fb *SampleBuffer) String() string {
	return fmt.Sprintf("SampleBuffer(%d,%d)", fb.width, fb.height)
}
