package sprites

import (
	"testing"

	"github.com/valerio/go-arduboy/arduboy/bitmap"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/video"
)

func BenchmarkDraw(b *testing.B) {
	sprite := bitmap.New(testSprite)
	mask := bitmap.NewMask(testSprite[bitmap.HeaderSize:], 8, 16)

	targets := []struct {
		name    string
		surface video.Surface
	}{
		{"packed", video.NewPackedBuffer(display.Width, display.Height)},
		{"sample", video.NewSampleBuffer(display.Width, display.Height)},
	}
	modes := []Mode{ExternalMask, Overwrite, Erase, SelfMasked}

	for _, target := range targets {
		for _, mode := range modes {
			b.Run(target.name+"/"+mode.String(), func(b *testing.B) {
				engine := New(target.surface)
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					// a full screen of sprites, a few of them clipped
					for y := -4; y < display.Height; y += 16 {
						for x := -4; x < display.Width; x += 8 {
							engine.Draw(x, y, sprite, i%2, mask, 0, mode)
						}
					}
				}
			})
		}
	}
}
