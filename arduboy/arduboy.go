// Package arduboy is the system context games run against: the screen
// buffer, the blit engine, buttons, audio and frame pacing.
package arduboy

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/valerio/go-arduboy/arduboy/audio"
	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/geom"
	"github.com/valerio/go-arduboy/arduboy/input"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/input/event"
	"github.com/valerio/go-arduboy/arduboy/sprites"
	"github.com/valerio/go-arduboy/arduboy/timing"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// ErrNoBackend is returned by Run when no backend was configured.
var ErrNoBackend = errors.New("no backend configured")

// Config holds the settings of a console instance
type Config struct {
	FrameRate int             // frames per second, display.DefaultFrameRate if zero
	Limiter   timing.Kind     // frame pacing strategy, adaptive if empty
	Surface   video.Surface   // screen buffer, a packed device-sized buffer if nil
	Backend   backend.Backend // where frames go, may be nil for custom loops
	Display   backend.Config  // passed to Backend.Init
	Seed      uint64          // random seed, 0 picks one from the clock
}

// Arduboy is a single console: one screen buffer, one frame counter and one
// set of buttons. It is not safe for concurrent use.
type Arduboy struct {
	config Config

	screen  video.Surface
	sprites *sprites.Sprites
	buttons input.Buttons
	inputs  *input.Manager
	audio   *audio.Audio
	tones   *audio.Tones
	limiter timing.Limiter
	rng     *rand.Rand

	frameRate  int
	frameCount uint64
	running    bool
	paused     bool
}

// New creates a console from config. Call Begin (or Run) before the first frame.
func New(config Config) *Arduboy {
	if config.FrameRate <= 0 {
		config.FrameRate = display.DefaultFrameRate
	}
	if config.Limiter == "" {
		config.Limiter = timing.KindAdaptive
	}
	if config.Surface == nil {
		config.Surface = video.NewSurface()
	}

	a := &Arduboy{
		config:    config,
		screen:    config.Surface,
		sprites:   sprites.New(config.Surface),
		audio:     audio.New(),
		limiter:   timing.New(config.Limiter, config.FrameRate),
		frameRate: config.FrameRate,
	}
	a.tones = audio.NewTones(a.audio.Enabled)
	a.inputs = input.NewManager(&a.buttons)
	a.seed(config.Seed)
	a.registerSystemActions()

	return a
}

func (a *Arduboy) registerSystemActions() {
	a.inputs.On(action.SystemQuit, event.Press, func() {
		slog.Info("Quit requested", "frame", a.frameCount)
		a.running = false
	})
	a.inputs.On(action.SystemAudioToggle, event.Press, func() {
		enabled := a.audio.Toggle()
		if !enabled {
			a.tones.NoTone()
		}
		slog.Info("Audio toggled", "enabled", enabled)
	})
	a.inputs.On(action.SystemPauseToggle, event.Press, func() {
		a.paused = !a.paused
		slog.Info("Pause toggled", "paused", a.paused)
	})
}

func (a *Arduboy) seed(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Begin prepares the console for the first frame: restores the audio
// setting, clears the screen and restarts frame pacing.
func (a *Arduboy) Begin() {
	a.audio.Begin()
	a.screen.Clear()
	a.limiter.Reset()
	a.running = true
}

// Clear turns every pixel of the screen buffer off.
func (a *Arduboy) Clear() {
	a.screen.Clear()
}

// Display presents the screen buffer on the backend and applies the input
// it reported. Without a backend it does nothing.
func (a *Arduboy) Display() error {
	if a.config.Backend == nil {
		return nil
	}

	events, err := a.config.Backend.Update(a.screen)
	if err != nil {
		return fmt.Errorf("failed to present frame %d: %w", a.frameCount, err)
	}
	for _, evt := range events {
		a.inputs.Trigger(evt.Action, evt.Type)
	}
	return nil
}

// SetFrameRate changes the target frame rate.
func (a *Arduboy) SetFrameRate(rate int) {
	if rate <= 0 {
		return
	}
	a.frameRate = rate
	a.limiter.SetFrameRate(rate)
}

// FrameRate returns the target frame rate.
func (a *Arduboy) FrameRate() int {
	return a.frameRate
}

// NextFrame waits until the next frame is due, then advances the frame
// counter. It returns false once the console has stopped.
func (a *Arduboy) NextFrame() bool {
	if !a.running {
		return false
	}
	a.limiter.WaitForNextFrame()
	a.frameCount++
	return true
}

// EveryXFrames reports whether the current frame is a multiple of frames.
func (a *Arduboy) EveryXFrames(frames uint8) bool {
	if frames == 0 {
		return false
	}
	return a.frameCount%uint64(frames) == 0
}

// FrameCount returns the number of frames started since New.
func (a *Arduboy) FrameCount() uint64 {
	return a.frameCount
}

// PollButtons samples the buttons. Call it once per frame, before reading
// JustPressed or JustReleased.
func (a *Arduboy) PollButtons() {
	a.buttons.Poll()
}

func (a *Arduboy) Pressed(buttons input.Button) bool {
	return a.buttons.Pressed(buttons)
}

func (a *Arduboy) NotPressed(buttons input.Button) bool {
	return a.buttons.NotPressed(buttons)
}

func (a *Arduboy) JustPressed(button input.Button) bool {
	return a.buttons.JustPressed(button)
}

func (a *Arduboy) JustReleased(button input.Button) bool {
	return a.buttons.JustReleased(button)
}

// Collide reports whether two rectangles overlap.
func (a *Arduboy) Collide(r1, r2 geom.Rect) bool {
	return geom.Collide(r1, r2)
}

// CollidePoint reports whether p lies inside r.
func (a *Arduboy) CollidePoint(p geom.Point, r geom.Rect) bool {
	return geom.CollidePoint(p, r)
}

// InitRandomSeed reseeds the random source from the clock.
func (a *Arduboy) InitRandomSeed() {
	a.seed(0)
}

// Random returns a number in [lo, hi). It returns lo when hi <= lo.
func (a *Arduboy) Random(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + a.rng.IntN(hi-lo)
}

// Delay blocks for d.
func (a *Arduboy) Delay(d time.Duration) {
	time.Sleep(d)
}

// Sprites returns the blit engine drawing into the screen buffer.
func (a *Arduboy) Sprites() *sprites.Sprites {
	return a.sprites
}

// Buffer returns the screen buffer.
func (a *Arduboy) Buffer() video.Surface {
	return a.screen
}

// Audio returns the sound enable control.
func (a *Arduboy) Audio() *audio.Audio {
	return a.audio
}

// Tones returns the tone queue, gated by the audio setting.
func (a *Arduboy) Tones() *audio.Tones {
	return a.tones
}

// Input returns the manager backend input is routed through.
func (a *Arduboy) Input() *input.Manager {
	return a.inputs
}

// Running reports whether the console is between Begin and a quit request.
func (a *Arduboy) Running() bool {
	return a.running
}

// Paused reports whether the pause action has stopped the game loop.
func (a *Arduboy) Paused() bool {
	return a.paused
}

// Stop ends the frame loop after the current frame.
func (a *Arduboy) Stop() {
	a.running = false
}
