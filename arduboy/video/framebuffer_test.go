package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-arduboy/arduboy/display"
)

func surfaces() map[string]func(w, h int) Surface {
	return map[string]func(w, h int) Surface{
		"packed": func(w, h int) Surface { return NewPackedBuffer(w, h) },
		"sample": func(w, h int) Surface { return NewSampleBuffer(w, h) },
	}
}

func TestSurfaceSetAndGet(t *testing.T) {
	for name, newSurface := range surfaces() {
		t.Run(name, func(t *testing.T) {
			s := newSurface(16, 16)

			s.SetPixel(3, 9, true)
			assert.True(t, s.Pixel(3, 9))
			assert.False(t, s.Pixel(9, 3))

			s.SetPixel(3, 9, false)
			assert.False(t, s.Pixel(3, 9))
		})
	}
}

func TestSurfaceOutOfBoundsWritesAreNoOps(t *testing.T) {
	coords := [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 16}, {-100, -100}, {100, 100}}

	for name, newSurface := range surfaces() {
		t.Run(name, func(t *testing.T) {
			s := newSurface(16, 16)
			reference := newSurface(16, 16)

			for _, c := range coords {
				assert.NotPanics(t, func() { s.SetPixel(c[0], c[1], true) })
				assert.False(t, s.Pixel(c[0], c[1]))
			}
			assert.True(t, Equal(reference, s), "buffer should be untouched")
		})
	}
}

func TestSurfaceClear(t *testing.T) {
	for name, newSurface := range surfaces() {
		t.Run(name, func(t *testing.T) {
			s := newSurface(8, 8)
			FillScreen(s, true)
			assert.True(t, s.Pixel(7, 7))

			s.Clear()
			for _, row := range Rows(s) {
				for _, px := range row {
					assert.False(t, px)
				}
			}
		})
	}
}

func TestPackedBufferPageLayout(t *testing.T) {
	fb := NewPackedBuffer(display.Width, display.Height)
	require.Len(t, fb.Bytes(), display.BufferSize)

	fb.SetPixel(0, 0, true)
	fb.SetPixel(5, 7, true)
	fb.SetPixel(5, 8, true)
	fb.SetPixel(127, 63, true)

	assert.Equal(t, byte(0x01), fb.Bytes()[0])
	assert.Equal(t, byte(0x80), fb.Bytes()[5])
	assert.Equal(t, byte(0x01), fb.Bytes()[display.Width+5])
	assert.Equal(t, byte(0x80), fb.Bytes()[display.BufferSize-1])
}

func TestPackedBufferPartialPage(t *testing.T) {
	fb := NewPackedBuffer(4, 10)
	assert.Len(t, fb.Bytes(), 8)

	fb.SetPixel(1, 9, true)
	assert.True(t, fb.Pixel(1, 9))

	// row 10 would fit in the last page, but is outside the buffer
	fb.SetPixel(1, 10, true)
	assert.False(t, fb.Pixel(1, 10))
}

func TestSampleBufferRowMajor(t *testing.T) {
	fb := NewSampleBuffer(4, 3)
	fb.SetPixel(2, 1, true)

	samples := fb.ToSlice()
	require.Len(t, samples, 12)
	assert.Equal(t, SampleOn, samples[1*4+2])
	assert.Equal(t, SampleOn, fb.Sample(2, 1))
	assert.Equal(t, SampleOff, fb.Sample(-1, 1))
}

func TestToGrayAndRows(t *testing.T) {
	fb := NewPackedBuffer(3, 2)
	fb.SetPixel(1, 0, true)
	fb.SetPixel(2, 1, true)

	assert.Equal(t, [][]bool{{false, true, false}, {false, false, true}}, Rows(fb))

	img := ToGray(fb)
	assert.Equal(t, []uint8{0, 255, 0, 0, 0, 255}, img.Pix)
}

func TestCopyBetweenStrategies(t *testing.T) {
	packed := NewPackedBuffer(10, 16)
	DrawRect(packed, 1, 1, 8, 14, true)

	sample := NewSampleBuffer(10, 16)
	Copy(sample, packed)
	assert.True(t, Equal(packed, sample))

	sample.SetPixel(0, 0, true)
	assert.False(t, Equal(packed, sample))
	assert.False(t, Equal(packed, NewSampleBuffer(10, 8)))
}
