package video

import (
	"fmt"

	"github.com/valerio/go-arduboy/arduboy/bit"
	"github.com/valerio/go-arduboy/arduboy/display"
)

// PackedBuffer stores one bit per pixel using the OLED controller's page
// layout: byte (y/8)*width + x holds the 8 pixel column starting at row
// y&^7, bit y%8 being pixel y. This is the same layout sprites are encoded
// in, and the buffer can be sent to the controller as is.
type PackedBuffer struct {
	width  int
	height int
	buffer []byte
}

// NewPackedBuffer creates a packed buffer with the specified size. height is
// rounded up to a whole number of pages.
func NewPackedBuffer(width, height int) *PackedBuffer {
	pages := (height + display.PageHeight - 1) / display.PageHeight
	return &PackedBuffer{
		width:  width,
		height: height,
		buffer: make([]byte, width*pages),
	}
}

func (fb *PackedBuffer) Width() int {
	return fb.width
}

func (fb *PackedBuffer) Height() int {
	return fb.height
}

func (fb *PackedBuffer) index(x, y int) int {
	return (y/display.PageHeight)*fb.width + x
}

func (fb *PackedBuffer) Pixel(x, y int) bool {
	if !inBounds(fb, x, y) {
		return false
	}
	return bit.IsSet(uint8(y%display.PageHeight), fb.buffer[fb.index(x, y)])
}

func (fb *PackedBuffer) SetPixel(x, y int, on bool) {
	if !inBounds(fb, x, y) {
		return
	}
	i := fb.index(x, y)
	fb.buffer[i] = bit.Assign(uint8(y%display.PageHeight), fb.buffer[i], on)
}

func (fb *PackedBuffer) Clear() {
	clear(fb.buffer)
}

// Bytes returns the packed pages, ready for the display controller.
func (fb *PackedBuffer) Bytes() []byte {
	return fb.buffer
}

func (fb *PackedBuffer) String() string {
	return fmt.Sprintf("PackedBuffer(%d,%d)", fb.width, fb.height)
}
