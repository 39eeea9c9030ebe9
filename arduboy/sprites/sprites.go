// Package sprites composites bitmap frames onto a video.Surface.
package sprites

import (
	"fmt"

	"github.com/valerio/go-arduboy/arduboy/bitmap"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Mode selects how source pixels combine with the pixels already on the surface.
//
//	Mode          rule (img = source, msk = mask, dst = surface)
//	ExternalMask  dst = msk ? img : dst   (mask is a separate bitmap)
//	PlusMask      dst = msk ? img : dst   (mask interleaved with the image)
//	Overwrite     dst = img
//	Erase         dst = img ? 0 : dst
//	SelfMasked    dst = img ? 1 : dst
type Mode int

const (
	ExternalMask Mode = iota
	PlusMask
	Overwrite
	Erase
	SelfMasked
)

func (m Mode) String() string {
	switch m {
	case ExternalMask:
		return "external-mask"
	case PlusMask:
		return "plus-mask"
	case Overwrite:
		return "overwrite"
	case Erase:
		return "erase"
	case SelfMasked:
		return "self-masked"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Sprites draws bitmaps onto a single surface. The surface decides how
// pixels are stored, so the same engine serves the packed device buffer and
// the float sample buffer used on desktop.
//
// Sprites is not safe for concurrent use; callers serialize all draws of a
// frame before presenting it.
type Sprites struct {
	dst video.Surface
}

// New returns an engine drawing onto dst.
func New(dst video.Surface) *Sprites {
	return &Sprites{dst: dst}
}

// Surface returns the surface the engine draws onto.
func (s *Sprites) Surface() video.Surface {
	return s.dst
}

// Draw composites frame of b at (x, y) using mode. mask and maskFrame are
// only read in ExternalMask mode, where the mask must have the same
// dimensions as b; a zero mask masks every pixel out. PlusMask mode requires
// b to be a plus-mask bitmap.
//
// Pixels falling outside the surface are skipped. Frame indexes are not
// checked against the bitmap's frame count.
func (s *Sprites) Draw(x, y int, b bitmap.Bitmap, frame int, mask bitmap.Bitmap, maskFrame int, mode Mode) {
	i0, i1 := clip(x, b.Width(), s.dst.Width())
	j0, j1 := clip(y, b.Height(), s.dst.Height())

	for j := j0; j < j1; j++ {
		for i := i0; i < i1; i++ {
			img := b.Pixel(frame, i, j)
			dx, dy := x+i, y+j

			switch mode {
			case Overwrite:
				s.dst.SetPixel(dx, dy, img)
			case Erase:
				if img {
					s.dst.SetPixel(dx, dy, false)
				}
			case SelfMasked:
				if img {
					s.dst.SetPixel(dx, dy, true)
				}
			case PlusMask:
				if b.MaskPixel(frame, i, j) {
					s.dst.SetPixel(dx, dy, img)
				}
			case ExternalMask:
				if mask.MaskPixel(maskFrame, i, j) {
					s.dst.SetPixel(dx, dy, img)
				}
			}
		}
	}
}

// DrawOverwrite replaces the covered pixels with the frame's pixels.
func (s *Sprites) DrawOverwrite(x, y int, b bitmap.Bitmap, frame int) {
	s.Draw(x, y, b, frame, bitmap.Bitmap{}, 0, Overwrite)
}

// DrawErase clears the pixels that are set in the frame.
func (s *Sprites) DrawErase(x, y int, b bitmap.Bitmap, frame int) {
	s.Draw(x, y, b, frame, bitmap.Bitmap{}, 0, Erase)
}

// DrawSelfMasked sets the pixels that are set in the frame and leaves the others.
func (s *Sprites) DrawSelfMasked(x, y int, b bitmap.Bitmap, frame int) {
	s.Draw(x, y, b, frame, bitmap.Bitmap{}, 0, SelfMasked)
}

// DrawPlusMask draws a plus-mask bitmap, writing only where its mask is set.
func (s *Sprites) DrawPlusMask(x, y int, b bitmap.Bitmap, frame int) {
	s.Draw(x, y, b, frame, bitmap.Bitmap{}, 0, PlusMask)
}

// DrawExternalMask draws b through a separate mask. The mask frame may differ
// from the image frame, so one mask can serve several image frames.
func (s *Sprites) DrawExternalMask(x, y int, b bitmap.Bitmap, mask bitmap.Bitmap, frame, maskFrame int) {
	s.Draw(x, y, b, frame, mask, maskFrame, ExternalMask)
}

// clip returns the range of local coordinates [lo, hi) of a sprite span of
// the given size placed at pos that land inside [0, limit).
func clip(pos, size, limit int) (lo, hi int) {
	lo, hi = 0, size
	if pos < 0 {
		lo = -pos
	}
	if pos+hi > limit {
		hi = limit - pos
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
