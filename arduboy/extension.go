package arduboy

import (
	"github.com/valerio/go-arduboy/arduboy/audio"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Extension is what add-on libraries get to see of a console: enough to
// draw into the frame, pace themselves on the frame counter and mute sound.
type Extension interface {
	FrameCount() uint64
	Buffer() video.Surface
	AudioControl() audio.Control
}

var _ Extension = (*Arduboy)(nil)

// AudioControl returns the audio setting as an add-on sees it.
func (a *Arduboy) AudioControl() audio.Control {
	return a.audio
}
