package sprites

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-arduboy/arduboy/bitmap"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// 8x16, two frames: a hollow box and a filled triangle.
var testSprite = []byte{
	8, 16,
	// frame 0
	0xFF, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0xFF,
	0xFF, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0xFF,
	// frame 1
	0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

func allBytes(n int, v byte) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = v
	}
	return data
}

func newScreen() *video.PackedBuffer {
	return video.NewPackedBuffer(display.Width, display.Height)
}

// noise fills the surface with a deterministic pattern so that modes which
// preserve destination pixels have something to preserve.
func noise(s video.Surface, seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed+1))
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetPixel(x, y, r.IntN(2) == 1)
		}
	}
}

func snapshot(s video.Surface) [][]bool {
	return video.Rows(s)
}

// referenceDraw is the straightforward per-pixel bounds-checked rendition of Draw.
func referenceDraw(dst video.Surface, x, y int, b bitmap.Bitmap, frame int, mask bitmap.Bitmap, maskFrame int, mode Mode) {
	for j := 0; j < b.Height(); j++ {
		for i := 0; i < b.Width(); i++ {
			dx, dy := x+i, y+j
			if dx < 0 || dx >= dst.Width() || dy < 0 || dy >= dst.Height() {
				continue
			}
			img, cur := b.Pixel(frame, i, j), dst.Pixel(dx, dy)
			switch mode {
			case Overwrite:
				cur = img
			case Erase:
				cur = cur && !img
			case SelfMasked:
				cur = cur || img
			case PlusMask:
				if b.MaskPixel(frame, i, j) {
					cur = img
				}
			case ExternalMask:
				if mask.MaskPixel(maskFrame, i, j) {
					cur = img
				}
			}
			dst.SetPixel(dx, dy, cur)
		}
	}
}

func TestOverwriteAtOriginMatchesDecodedFrame(t *testing.T) {
	b := bitmap.New(testSprite)

	for frame := 0; frame < b.FrameCount(); frame++ {
		screen := newScreen()
		New(screen).DrawOverwrite(0, 0, b, frame)

		decoded := b.Frame(frame)
		rows := snapshot(screen)
		for j := 0; j < b.Height(); j++ {
			assert.Equal(t, decoded[j], rows[j][:b.Width()], "frame %d row %d", frame, j)
		}
	}
}

func TestOverwriteIsIdempotent(t *testing.T) {
	b := bitmap.New(testSprite)
	screen := newScreen()
	noise(screen, 7)
	engine := New(screen)

	engine.DrawOverwrite(10, 20, b, 1)
	first := snapshot(screen)
	engine.DrawOverwrite(10, 20, b, 1)

	assert.Equal(t, first, snapshot(screen))
}

func TestOverwriteReplacesCoveredPixels(t *testing.T) {
	b := bitmap.New(testSprite)
	screen := newScreen()
	video.FillScreen(screen, true)

	New(screen).DrawOverwrite(0, 0, b, 0)

	assert.False(t, screen.Pixel(3, 3), "hollow inside clears lit pixels")
	assert.True(t, screen.Pixel(0, 3))
	assert.True(t, screen.Pixel(8, 3), "pixels right of the sprite are kept")
}

func TestSelfMaskedOnlySets(t *testing.T) {
	b := bitmap.New(testSprite)
	screen := newScreen()
	noise(screen, 11)
	before := snapshot(screen)

	New(screen).DrawSelfMasked(4, 4, b, 0)

	after := snapshot(screen)
	for y := range before {
		for x := range before[y] {
			if before[y][x] {
				require.True(t, after[y][x], "pixel (%d,%d) was cleared", x, y)
			}
		}
	}
}

func TestSelfMaskedThenEraseReturnsToZero(t *testing.T) {
	b := bitmap.New(testSprite)

	for frame := 0; frame < b.FrameCount(); frame++ {
		screen := newScreen()
		engine := New(screen)

		engine.DrawSelfMasked(30, 12, b, frame)
		engine.DrawErase(30, 12, b, frame)

		assert.True(t, video.Equal(newScreen(), screen), "frame %d left pixels behind", frame)
	}
}

func TestEraseOnlyClearsSourcePixels(t *testing.T) {
	b := bitmap.New(testSprite)
	screen := newScreen()
	video.FillScreen(screen, true)

	New(screen).DrawErase(0, 0, b, 0)

	assert.False(t, screen.Pixel(0, 0))
	assert.True(t, screen.Pixel(3, 3), "pixels not set in the source are kept")
}

func TestExternalMaskAllOnesEqualsOverwrite(t *testing.T) {
	b := bitmap.New(testSprite)
	mask := bitmap.NewMask(allBytes(16, 0xFF), 8, 16)

	for _, pos := range [][2]int{{0, 0}, {50, 30}, {-3, -5}, {124, 60}} {
		withMask := newScreen()
		noise(withMask, 3)
		overwrite := newScreen()
		noise(overwrite, 3)

		New(withMask).DrawExternalMask(pos[0], pos[1], b, mask, 1, 0)
		New(overwrite).DrawOverwrite(pos[0], pos[1], b, 1)

		assert.True(t, video.Equal(overwrite, withMask), "position %v", pos)
	}
}

func TestExternalMaskAllZerosIsNoOp(t *testing.T) {
	b := bitmap.New(testSprite)
	mask := bitmap.NewMask(allBytes(16, 0x00), 8, 16)
	screen := newScreen()
	noise(screen, 5)
	before := snapshot(screen)

	New(screen).DrawExternalMask(20, 20, b, mask, 0, 0)
	assert.Equal(t, before, snapshot(screen))

	New(screen).DrawExternalMask(20, 20, b, bitmap.Bitmap{}, 0, 0)
	assert.Equal(t, before, snapshot(screen), "a zero mask masks everything out")
}

func TestExternalMaskFrameIndependentOfImageFrame(t *testing.T) {
	b := bitmap.New(testSprite)
	// frame 0 masks the left half, frame 1 the right half
	maskData := append(
		append(allBytes(4, 0xFF), allBytes(4, 0x00)...),
		append(allBytes(4, 0xFF), allBytes(4, 0x00)...)...,
	)
	maskData = append(maskData, append(
		append(allBytes(4, 0x00), allBytes(4, 0xFF)...),
		append(allBytes(4, 0x00), allBytes(4, 0xFF)...)...,
	)...)
	mask := bitmap.NewMask(maskData, 8, 16)
	require.Equal(t, 2, mask.FrameCount())

	screen := newScreen()
	New(screen).DrawExternalMask(0, 0, b, mask, 1, 1)

	// frame 1 is fully lit on its bottom band, but only the right half is let through
	assert.False(t, screen.Pixel(0, 12))
	assert.True(t, screen.Pixel(7, 12))
}

func TestPlusMask(t *testing.T) {
	image := [][]bool{
		{true, false, true},
		{false, false, false},
	}
	mask := [][]bool{
		{true, true, false},
		{true, false, false},
	}
	data, err := bitmap.PackPlusMask(3, 8, [][][]bool{image}, [][][]bool{mask})
	require.NoError(t, err)
	b := bitmap.NewPlusMask(data)

	screen := newScreen()
	video.FillScreen(screen, true)
	New(screen).DrawPlusMask(0, 0, b, 0)

	assert.True(t, screen.Pixel(0, 0), "mask set, image set")
	assert.False(t, screen.Pixel(1, 0), "mask set, image clear")
	assert.True(t, screen.Pixel(2, 0), "mask clear keeps destination")
	assert.False(t, screen.Pixel(0, 1), "mask set, image clear")
	assert.True(t, screen.Pixel(1, 1), "mask clear keeps destination")
}

func TestFullyOffscreenDrawsAreNoOps(t *testing.T) {
	b := bitmap.New(testSprite)
	mask := bitmap.NewMask(allBytes(16, 0xFF), 8, 16)
	positions := [][2]int{
		{display.Width, 0},
		{-b.Width(), 0},
		{0, display.Height},
		{0, -b.Height()},
		{-1000, -1000},
		{1000, 1000},
	}
	modes := []Mode{ExternalMask, PlusMask, Overwrite, Erase, SelfMasked}

	for _, mode := range modes {
		for _, pos := range positions {
			t.Run(fmt.Sprintf("%s at %v", mode, pos), func(t *testing.T) {
				screen := newScreen()
				noise(screen, 9)
				before := snapshot(screen)

				New(screen).Draw(pos[0], pos[1], b, 1, mask, 0, mode)

				assert.Equal(t, before, snapshot(screen))
			})
		}
	}
}

func TestClippingMatchesPerPixelReference(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 43))
	b := bitmap.New(testSprite)
	mask := bitmap.NewMask(testSprite[bitmap.HeaderSize:], 8, 16)
	plus, err := bitmap.PackPlusMask(8, 16, [][][]bool{b.Frame(1)}, [][][]bool{b.Frame(0)})
	require.NoError(t, err)
	plusBitmap := bitmap.NewPlusMask(plus)

	modes := []Mode{ExternalMask, PlusMask, Overwrite, Erase, SelfMasked}
	for n := 0; n < 200; n++ {
		mode := modes[r.IntN(len(modes))]
		x := r.IntN(display.Width+40) - 20
		y := r.IntN(display.Height+40) - 20
		src := b
		if mode == PlusMask {
			src = plusBitmap
		}

		got := newScreen()
		noise(got, uint64(n))
		want := video.NewSampleBuffer(display.Width, display.Height)
		video.Copy(want, got)

		New(got).Draw(x, y, src, 0, mask, 1, mode)
		referenceDraw(want, x, y, src, 0, mask, 1, mode)

		require.True(t, video.Equal(want, got), "%s at (%d,%d)", mode, x, y)
	}
}

func TestSameResultOnBothStrategies(t *testing.T) {
	b := bitmap.New(testSprite)
	packed := newScreen()
	sample := video.NewSampleBuffer(display.Width, display.Height)

	for _, target := range []video.Surface{packed, sample} {
		engine := New(target)
		engine.DrawOverwrite(-2, 60, b, 0)
		engine.DrawSelfMasked(100, 3, b, 1)
		engine.DrawErase(102, 5, b, 0)
	}

	assert.True(t, video.Equal(packed, sample))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "self-masked", SelfMasked.String())
	assert.Equal(t, "Mode(42)", Mode(42).String())
}

func TestClip(t *testing.T) {
	tests := []struct {
		pos, size, limit int
		lo, hi           int
	}{
		{0, 8, 128, 0, 8},
		{-3, 8, 128, 3, 8},
		{124, 8, 128, 0, 4},
		{128, 8, 128, 0, 0},
		{-8, 8, 128, 8, 8},
		{-20, 8, 4, 20, 20},
	}
	for _, tt := range tests {
		lo, hi := clip(tt.pos, tt.size, tt.limit)
		assert.Equal(t, tt.lo, lo, "clip(%d,%d,%d) lo", tt.pos, tt.size, tt.limit)
		assert.Equal(t, tt.hi, hi, "clip(%d,%d,%d) hi", tt.pos, tt.size, tt.limit)
	}
}
