package pgm

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-arduboy/arduboy/bitmap"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/sprites"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// parsePlain reads back the exact layout Encode writes.
func parsePlain(t *testing.T, text string) (width, height int, samples []int) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	require.Equal(t, "P2", lines[0])

	dims := strings.Fields(lines[1])
	require.Len(t, dims, 2)
	width, _ = strconv.Atoi(dims[0])
	height, _ = strconv.Atoi(dims[1])
	require.Equal(t, "255", lines[2])

	for _, line := range lines[3:] {
		v, err := strconv.Atoi(line)
		require.NoError(t, err)
		samples = append(samples, v)
	}
	require.Len(t, samples, width*height)
	return width, height, samples
}

func TestEncodeExactLayout(t *testing.T) {
	s := video.NewPackedBuffer(3, 2)
	s.SetPixel(0, 0, true)
	s.SetPixel(2, 1, true)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	assert.Equal(t, "P2\n3 2\n255\n255\n0\n0\n0\n0\n255\n", buf.String())
}

func TestOverwriteDumpReproducesBitmap(t *testing.T) {
	data := []byte{
		5, 16,
		0x81, 0x42, 0x24, 0x18, 0xFF,
		0x00, 0x0F, 0xF0, 0xAA, 0x55,
	}
	b := bitmap.New(data)

	screen := video.NewPackedBuffer(display.Width, display.Height)
	sprites.New(screen).DrawOverwrite(0, 0, b, 0)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, screen))
	width, height, samples := parsePlain(t, buf.String())
	require.Equal(t, display.Width, width)
	require.Equal(t, display.Height, height)

	decoded := b.Frame(0)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			want := 0
			if decoded[y][x] {
				want = 255
			}
			assert.Equal(t, want, samples[y*width+x], "pixel (%d,%d)", x, y)
		}
	}
}

func TestEncodeBitmapSpriteSheet(t *testing.T) {
	data := []byte{
		2, 8,
		0x01, 0x00, // frame 0: top-left pixel
		0x00, 0x80, // frame 1: bottom-right pixel
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeBitmap(&buf, bitmap.New(data)))

	width, height, samples := parsePlain(t, buf.String())
	assert.Equal(t, 2, width)
	assert.Equal(t, 16, height, "frames are stacked vertically")
	assert.Equal(t, 255, samples[0])
	assert.Equal(t, 255, samples[15*2+1])

	lit := 0
	for _, v := range samples {
		if v == 255 {
			lit++
		}
	}
	assert.Equal(t, 2, lit)
}

func TestDecodeSurfaceFromPGM(t *testing.T) {
	s := video.NewPackedBuffer(8, 8)
	video.DrawRect(s, 1, 1, 6, 6, true)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	decoded, err := DecodeSurface(&buf)
	require.NoError(t, err)
	assert.True(t, video.Equal(s, decoded))
}

func TestDecodePNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	img.SetGray(3, 1, color.Gray{Y: 200})
	img.SetGray(0, 0, color.Gray{Y: 100})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	s, err := DecodeSurface(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Width())
	assert.True(t, s.Pixel(3, 1))
	assert.False(t, s.Pixel(0, 0), "below threshold")
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}
