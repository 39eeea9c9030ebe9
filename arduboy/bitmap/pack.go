package bitmap

import (
	"fmt"

	"github.com/valerio/go-arduboy/arduboy/bit"
	"github.com/valerio/go-arduboy/arduboy/display"
)

// Pack encodes row-major frames into self-describing bitmap bytes.
// Pixels outside a frame's matrix are packed as unset.
func Pack(width, height int, frames ...[][]bool) ([]byte, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	frameSize := width * height / display.PageHeight
	data := make([]byte, HeaderSize, HeaderSize+len(frames)*frameSize)
	data[0], data[1] = byte(width), byte(height)

	for _, frame := range frames {
		for band := 0; band < height/display.PageHeight; band++ {
			for x := 0; x < width; x++ {
				data = append(data, packColumn(frame, x, band))
			}
		}
	}

	return data, nil
}

// PackPlusMask encodes frames and their masks into interleaved plus-mask bytes.
// images and masks must have the same number of frames.
func PackPlusMask(width, height int, images, masks [][][]bool) ([]byte, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(images) != len(masks) {
		return nil, fmt.Errorf("got %d images and %d masks", len(images), len(masks))
	}

	frameSize := 2 * width * height / display.PageHeight
	data := make([]byte, HeaderSize, HeaderSize+len(images)*frameSize)
	data[0], data[1] = byte(width), byte(height)

	for f := range images {
		for band := 0; band < height/display.PageHeight; band++ {
			for x := 0; x < width; x++ {
				data = append(data, packColumn(images[f], x, band), packColumn(masks[f], x, band))
			}
		}
	}

	return data, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || width > 255 || height <= 0 || height > 255 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrDimensions)
	}
	if height%display.PageHeight != 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrHeightNotMultipleOf8)
	}
	return nil
}

// packColumn builds the byte for column x of the given 8 row band.
func packColumn(frame [][]bool, x, band int) byte {
	var b byte
	for i := 0; i < display.PageHeight; i++ {
		y := band*display.PageHeight + i
		if y < len(frame) && x < len(frame[y]) && frame[y][x] {
			b = bit.Set(uint8(i), b)
		}
	}
	return b
}
