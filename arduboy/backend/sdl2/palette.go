package sdl2

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/video"
)

const bytesPerPixel = 4

// palette holds the RGBA8888 byte sequences written for unlit and lit pixels
type palette [2][bytesPerPixel]byte

func newPalette(ink, paper string) (palette, error) {
	var p palette
	if ink == "" {
		ink = display.DefaultInk
	}
	if paper == "" {
		paper = display.DefaultPaper
	}

	for i, hex := range []string{paper, ink} {
		c, err := colorful.Hex(hex)
		if err != nil {
			return p, fmt.Errorf("invalid colour %q: %w", hex, err)
		}
		r, g, b := c.RGB255()
		// ABGR byte order for little-endian RGBA8888
		p[i] = [bytesPerPixel]byte{display.FullAlpha, b, g, r}
	}
	return p, nil
}

// fill converts frame into texture bytes, reusing dst when it is big enough
func (p palette) fill(dst []byte, frame video.Surface) []byte {
	size := frame.Width() * frame.Height() * bytesPerPixel
	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]

	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			idx := 0
			if frame.Pixel(x, y) {
				idx = 1
			}
			copy(dst[(y*frame.Width()+x)*bytesPerPixel:], p[idx][:])
		}
	}
	return dst
}
