// Package pgm writes surfaces and sprite sheets as plain (P2) PGM images and
// reads grayscale images back.
//
// The writer emits exactly:
//
//	P2
//	<width> <height>
//	255
//	<one sample per line, row-major, 0 or 255>
package pgm

import (
	"bufio"
	"fmt"
	"image"
	"io"

	_ "image/png"

	_ "github.com/spakin/netpbm"
	"golang.org/x/image/draw"

	"github.com/valerio/go-arduboy/arduboy/bitmap"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Threshold is the gray level above which a decoded pixel counts as lit.
const Threshold = 127

// Encode writes the surface as a P2 image.
func Encode(w io.Writer, s video.Surface) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, s.Width(), s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			writeSample(bw, s.Pixel(x, y))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PGM: %w", err)
	}
	return nil
}

// EncodeBitmap writes every frame of b as one sprite sheet, frames stacked
// top to bottom, so the image is width x height*frames.
func EncodeBitmap(w io.Writer, b bitmap.Bitmap) error {
	frames := b.FrameCount()
	bw := bufio.NewWriter(w)
	writeHeader(bw, b.Width(), b.Height()*frames)

	for f := 0; f < frames; f++ {
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				writeSample(bw, b.Pixel(f, x, y))
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PGM sprite sheet: %w", err)
	}
	return nil
}

func writeHeader(w *bufio.Writer, width, height int) {
	fmt.Fprintf(w, "P2\n%d %d\n%d\n", width, height, display.PGMMaxValue)
}

func writeSample(w *bufio.Writer, on bool) {
	if on {
		fmt.Fprintf(w, "%d\n", display.GrayscaleWhite)
	} else {
		fmt.Fprintf(w, "%d\n", display.GrayscaleBlack)
	}
}

// Decode reads any registered image format (PGM, PNG) into a grayscale image.
func Decode(r io.Reader) (*image.Gray, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if gray, ok := img.(*image.Gray); ok {
		return gray, nil
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray, nil
}

// DecodeSurface reads an image into a packed surface of the same size,
// lighting pixels brighter than Threshold.
func DecodeSurface(r io.Reader) (*video.PackedBuffer, error) {
	gray, err := Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := gray.Bounds()
	s := video.NewPackedBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			s.SetPixel(x, y, gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y > Threshold)
		}
	}
	return s, nil
}
