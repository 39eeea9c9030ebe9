package demo

import (
	"log/slog"

	"github.com/valerio/go-arduboy/arduboy"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/input"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Pattern identifies one of the test patterns
type Pattern int

const (
	Checkerboard Pattern = iota
	Gradient
	Stripes
	Diagonal
)

var patternNames = [display.TestPatternCount]string{"Checkerboard", "Gradient", "Stripes", "Diagonal"}

func (p Pattern) String() string {
	return patternNames[int(p)%display.TestPatternCount]
}

// bayer4 is a 4x4 ordered dither matrix, used to fake the gradient
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// TestPattern displays test patterns instead of a game, to check a
// backend's output. A cycles through the patterns.
type TestPattern struct {
	pattern Pattern
	step    int
}

func NewTestPattern() *TestPattern {
	return &TestPattern{}
}

func (t *TestPattern) Setup(a *arduboy.Arduboy) {
	slog.Info("Running in test pattern mode", "pattern", t.pattern)
}

func (t *TestPattern) Loop(a *arduboy.Arduboy) {
	if a.JustPressed(input.AButton) {
		t.Cycle()
	}
	if a.EveryXFrames(display.TestPatternAnimationFrames) {
		t.step++
	}
	t.Draw(a.Buffer())
}

// Cycle switches to the next pattern.
func (t *TestPattern) Cycle() {
	t.pattern = (t.pattern + 1) % display.TestPatternCount
	t.step = 0
	slog.Info("Switched to test pattern", "pattern", t.pattern)
}

// Pattern returns the pattern being shown.
func (t *TestPattern) Pattern() Pattern {
	return t.pattern
}

// Draw renders the current pattern at the current animation step.
func (t *TestPattern) Draw(s video.Surface) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetPixel(x, y, t.lit(x, y, s.Width()))
		}
	}
}

func (t *TestPattern) lit(x, y, width int) bool {
	switch t.pattern {
	case Checkerboard:
		return ((x/display.TestPatternTileSize)+(y/display.TestPatternTileSize))%2 == 0
	case Gradient:
		level := x * 16 / width
		return bayer4[y%4][x%4] < level
	case Stripes:
		return ((x+t.step*display.TestPatternStripeSpeed)/display.TestPatternStripeWidth)%2 == 0
	default:
		return ((x+y+t.step*display.TestPatternDiagonalSpeed)/display.TestPatternTileSize)%2 == 0
	}
}
