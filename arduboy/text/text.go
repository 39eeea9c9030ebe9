// Package text renders strings onto monochrome surfaces with tinyfont.
package text

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/valerio/go-arduboy/arduboy/video"
)

// DefaultFont is a small proportional font that fits the 64 pixel tall screen.
var DefaultFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// Ink and Clear are the colours handed to tinyfont. Any colour with a
// non-zero alpha and some brightness lights a pixel.
var (
	Ink   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Clear = color.RGBA{A: 0xff}
)

// Displayer adapts a surface to the drivers.Displayer interface so tinyfont
// and other TinyGo drawing code can target it.
type Displayer struct {
	surface video.Surface
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(s video.Surface) *Displayer {
	return &Displayer{surface: s}
}

func (d *Displayer) Size() (x, y int16) {
	return int16(d.surface.Width()), int16(d.surface.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.surface.SetPixel(int(x), int(y), lit(c))
}

// Display is a no-op, the surface is presented by the game loop.
func (d *Displayer) Display() error {
	return nil
}

func lit(c color.RGBA) bool {
	return c.A != 0 && int(c.R)+int(c.G)+int(c.B) >= 3*0x80
}

// Print draws s with its baseline at y using the default font and returns
// the x coordinate just past the last glyph.
func Print(s video.Surface, x, y int, str string) int {
	return PrintFont(s, DefaultFont, x, y, str, true)
}

// PrintFont draws str with the given font, lighting pixels when on is true
// and clearing them otherwise.
func PrintFont(s video.Surface, font tinyfont.Fonter, x, y int, str string, on bool) int {
	c := Clear
	if on {
		c = Ink
	}
	tinyfont.WriteLine(NewDisplayer(s), font, int16(x), int16(y), str, c)
	return x + Width(font, str)
}

// Width returns the advance width of str in pixels.
func Width(font tinyfont.Fonter, str string) int {
	_, outbox := tinyfont.LineWidth(font, str)
	return int(outbox)
}
