// Package bitmap decodes the packed sprite format used by the display.
//
// A self-describing bitmap starts with a two byte header (width, height)
// followed by one or more frames. Every byte of a frame is a vertical strip
// of 8 pixels, bit 0 being the topmost one. Strips are stored left to right,
// one 8 pixel tall band at a time, top band first:
//
//	band 0:  byte[0]        byte[1]        ... byte[w-1]
//	band 1:  byte[w]        byte[w+1]      ... byte[2w-1]
//	...
//
// So pixel (x, y) of a frame lives in byte (y/8)*w + x, bit y%8.
//
// The plus-mask variant interleaves an image byte and a mask byte for every
// column, so a band is 2*w bytes long and the image byte of column x sits at
// 2*x with its mask right after it.
//
// Heights must be a multiple of 8 and frame indexes must be within the
// encoded frame count. Neither is checked while drawing: out of range reads
// see whatever bytes follow, and bytes past the end of the data read as 0.
// Validate can be used to assert the first precondition in tests or tools.
package bitmap

import (
	"errors"
	"fmt"

	"github.com/valerio/go-arduboy/arduboy/bit"
	"github.com/valerio/go-arduboy/arduboy/display"
)

// HeaderSize is the number of bytes preceding the frames of a self-describing bitmap.
const HeaderSize = 2

var (
	ErrEmpty                = errors.New("bitmap has no frame data")
	ErrHeightNotMultipleOf8 = errors.New("bitmap height is not a multiple of 8")
	ErrTruncated            = errors.New("bitmap data is not a whole number of frames")
	ErrDimensions           = errors.New("bitmap dimensions do not fit the header")
)

// Format describes how image and mask bytes are laid out inside a frame.
type Format int

const (
	// Plain frames hold one image byte per column.
	Plain Format = iota
	// PlusMask frames interleave an image byte and a mask byte per column.
	PlusMask
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case PlusMask:
		return "plus-mask"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Bitmap is a read-only view over packed sprite data. The byte slice is
// borrowed, never copied or modified.
type Bitmap struct {
	data   []byte
	width  int
	height int
	header int
	format Format
}

// New returns a self-describing bitmap whose first two bytes are its width
// and height.
func New(data []byte) Bitmap {
	return withHeader(data, Plain)
}

// NewPlusMask returns a self-describing bitmap with interleaved image and
// mask bytes.
func NewPlusMask(data []byte) Bitmap {
	return withHeader(data, PlusMask)
}

// NewMask returns a headerless bitmap, used for mask arrays that are stored
// separately from their image. The dimensions must match the image the mask
// is drawn with.
func NewMask(data []byte, width, height int) Bitmap {
	return Bitmap{
		data:   data,
		width:  width,
		height: height,
		format: Plain,
	}
}

func withHeader(data []byte, format Format) Bitmap {
	b := Bitmap{
		data:   data,
		header: HeaderSize,
		format: format,
	}
	if len(data) >= HeaderSize {
		b.width = int(data[0])
		b.height = int(data[1])
	}
	return b
}

func (b Bitmap) Width() int {
	return b.width
}

func (b Bitmap) Height() int {
	return b.height
}

func (b Bitmap) Format() Format {
	return b.format
}

// Header returns the number of header bytes, 2 or 0.
func (b Bitmap) Header() int {
	return b.header
}

// Bytes returns the underlying data, header included.
func (b Bitmap) Bytes() []byte {
	return b.data
}

// IsZero reports whether the bitmap wraps no data at all.
func (b Bitmap) IsZero() bool {
	return b.data == nil
}

// RowBytes returns the number of bytes in one 8 pixel band.
func (b Bitmap) RowBytes() int {
	if b.format == PlusMask {
		return 2 * b.width
	}
	return b.width
}

// FrameSize returns the number of bytes in a single frame.
func (b Bitmap) FrameSize() int {
	return b.RowBytes() * (b.height / display.PageHeight)
}

// FrameCount returns how many whole frames the data holds.
func (b Bitmap) FrameCount() int {
	size := b.FrameSize()
	if size == 0 || len(b.data) < b.header {
		return 0
	}
	return (len(b.data) - b.header) / size
}

// FrameOffset returns the index of the first byte of the given frame.
func (b Bitmap) FrameOffset(frame int) int {
	return b.header + frame*b.FrameSize()
}

// ByteIndex returns the index of the image byte holding pixel (x, y) of frame.
func (b Bitmap) ByteIndex(frame, x, y int) int {
	step := 1
	if b.format == PlusMask {
		step = 2
	}
	return b.FrameOffset(frame) + (y/display.PageHeight)*b.RowBytes() + x*step
}

func (b Bitmap) byteAt(i int) byte {
	if i < 0 || i >= len(b.data) {
		return 0
	}
	return b.data[i]
}

// Pixel reports whether the image pixel (x, y) of frame is set.
func (b Bitmap) Pixel(frame, x, y int) bool {
	return bit.IsSet(uint8(y%display.PageHeight), b.byteAt(b.ByteIndex(frame, x, y)))
}

// MaskPixel reports whether the mask pixel (x, y) of frame is set. For plain
// bitmaps this is the pixel itself, so a plain bitmap can serve as the
// external mask of another one.
func (b Bitmap) MaskPixel(frame, x, y int) bool {
	i := b.ByteIndex(frame, x, y)
	if b.format == PlusMask {
		i++
	}
	return bit.IsSet(uint8(y%display.PageHeight), b.byteAt(i))
}

// Frame decodes one frame into a row-major matrix of pixels.
func (b Bitmap) Frame(frame int) [][]bool {
	rows := make([][]bool, b.height)
	for y := range rows {
		rows[y] = make([]bool, b.width)
		for x := range rows[y] {
			rows[y][x] = b.Pixel(frame, x, y)
		}
	}
	return rows
}

// Validate checks the layout preconditions the draw routines rely on.
// Drawing never calls it.
func (b Bitmap) Validate() error {
	if b.height%display.PageHeight != 0 {
		return fmt.Errorf("%s: %w", b, ErrHeightNotMultipleOf8)
	}
	if b.FrameCount() == 0 {
		return fmt.Errorf("%s: %w", b, ErrEmpty)
	}
	if (len(b.data)-b.header)%b.FrameSize() != 0 {
		return fmt.Errorf("%s: %w", b, ErrTruncated)
	}
	return nil
}

func (b Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%dx%d, %s, %d frames)", b.width, b.height, b.format, b.FrameCount())
}
