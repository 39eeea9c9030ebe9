// Package convert turns ordinary images into self-describing bitmap data.
package convert

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"github.com/valerio/go-arduboy/arduboy/bitmap"
	"github.com/valerio/go-arduboy/arduboy/display"
)

// ErrNoImages is returned by Frames when given nothing to convert.
var ErrNoImages = errors.New("no images to convert")

// Options control how an image is reduced to one bit per pixel
type Options struct {
	Width, Height int     // output size, 0 keeps the source size
	Contrast      float32 // percentage in [-100, 100]
	Gamma         float32 // 0 or 1 leaves the image as is
	Invert        bool
	Dither        bool  // Floyd-Steinberg instead of a plain threshold
	Threshold     uint8 // gray level above which a pixel is lit, when not dithering
	PlusMask      bool  // interleave a mask taken from the alpha channel
}

// DefaultOptions dithers at the source size.
func DefaultOptions() Options {
	return Options{Dither: true, Threshold: display.GrayscaleWhite / 2}
}

// Image converts img to bitmap data with a single frame.
func Image(img image.Image, opts Options) ([]byte, error) {
	return Frames([]image.Image{img}, opts)
}

// Frames converts each image to one frame of the same bitmap. All images
// are scaled to the size of the first when opts leaves the size unset.
// Heights are padded with unlit rows up to a multiple of 8.
func Frames(imgs []image.Image, opts Options) ([]byte, error) {
	if len(imgs) == 0 {
		return nil, ErrNoImages
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = imgs[0].Bounds().Dx()
	}
	if height == 0 {
		height = imgs[0].Bounds().Dy()
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid output size %dx%d", width, height)
	}
	padded := (height + display.PageHeight - 1) / display.PageHeight * display.PageHeight

	images := make([][][]bool, len(imgs))
	masks := make([][][]bool, len(imgs))
	for i, img := range imgs {
		scaled := Resize(img, width, height)
		images[i] = Monochrome(scaled, opts)
		masks[i] = alphaMask(scaled)
	}

	if opts.PlusMask {
		return bitmap.PackPlusMask(width, padded, images, masks)
	}
	return bitmap.Pack(width, padded, images...)
}

// Resize scales img to width x height, returning it unchanged when it
// already has that size.
func Resize(img image.Image, width, height int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if b.Dx() == width && b.Dy() == height {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Monochrome reduces img to lit and unlit pixels, row-major.
func Monochrome(img image.Image, opts Options) [][]bool {
	filters := []gift.Filter{gift.Grayscale()}
	if opts.Contrast != 0 {
		filters = append(filters, gift.Contrast(opts.Contrast))
	}
	if opts.Gamma != 0 && opts.Gamma != 1 {
		filters = append(filters, gift.Gamma(opts.Gamma))
	}
	if opts.Invert {
		filters = append(filters, gift.Invert())
	}
	g := gift.New(filters...)

	gray := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(gray, img)

	b := gray.Bounds()
	rows := make([][]bool, b.Dy())
	for y := range rows {
		rows[y] = make([]bool, b.Dx())
	}

	if !opts.Dither {
		for y := range rows {
			for x := range rows[y] {
				rows[y][x] = gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y > opts.Threshold
			}
		}
		return rows
	}

	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	paletted := d.DitherPaletted(gray)
	pb := paletted.Bounds()
	for y := range rows {
		for x := range rows[y] {
			rows[y][x] = paletted.ColorIndexAt(pb.Min.X+x, pb.Min.Y+y) == 1
		}
	}
	return rows
}

// alphaMask marks the pixels that are at least half opaque
func alphaMask(img *image.RGBA) [][]bool {
	b := img.Bounds()
	rows := make([][]bool, b.Dy())
	for y := range rows {
		rows[y] = make([]bool, b.Dx())
		for x := range rows[y] {
			rows[y][x] = img.RGBAAt(b.Min.X+x, b.Min.Y+y).A >= 0x80
		}
	}
	return rows
}
