package video

import (
	"image"
	"image/color"

	"github.com/valerio/go-arduboy/arduboy/display"
)

// Surface is a 2D grid of monochrome pixels the blit engine draws into.
//
// Implementations decide how a pixel is stored (packed bits, float samples)
// but must treat writes outside [0,Width) x [0,Height) as no-ops and return
// false for reads outside it.
type Surface interface {
	Width() int
	Height() int
	Pixel(x, y int) bool
	SetPixel(x, y int, on bool)
	Clear()
}

// NewSurface returns the default surface for the device screen size.
func NewSurface() Surface {
	return NewPackedBuffer(display.Width, display.Height)
}

func inBounds(s Surface, x, y int) bool {
	return x >= 0 && x < s.Width() && y >= 0 && y < s.Height()
}

// Rows returns the surface contents as a row-major matrix.
func Rows(s Surface) [][]bool {
	rows := make([][]bool, s.Height())
	for y := range rows {
		rows[y] = make([]bool, s.Width())
		for x := range rows[y] {
			rows[y][x] = s.Pixel(x, y)
		}
	}
	return rows
}

// ToGray converts the surface to a grayscale image, lit pixels being white.
func ToGray(s Surface) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.Width(), s.Height()))
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			v := uint8(display.GrayscaleBlack)
			if s.Pixel(x, y) {
				v = display.GrayscaleWhite
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// Copy copies every pixel of src into dst. Pixels outside dst are dropped.
func Copy(dst, src Surface) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			dst.SetPixel(x, y, src.Pixel(x, y))
		}
	}
}

// Equal reports whether two surfaces have the same size and pixels.
func Equal(a, b Surface) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Pixel(x, y) != b.Pixel(x, y) {
				return false
			}
		}
	}
	return true
}
