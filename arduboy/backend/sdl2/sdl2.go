//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/debug"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	config   backend.Config
	palette  palette
	pixels   []byte
	events   []backend.InputEvent

	currentFrame video.Surface
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.Config) error {
	s.config = config

	p, err := newPalette(config.Ink, config.Paper)
	if err != nil {
		return err
	}
	s.palette = p

	scale := config.Scale
	if scale <= 0 {
		scale = display.DefaultPixelScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(display.Width*scale),
		int32(display.Height*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		display.Width,
		display.Height,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %w", err)
	}
	s.texture = texture

	slog.Info("SDL2 backend initialized", "scale", scale)
	return nil
}

// Update renders a frame and processes events
func (s *Backend) Update(frame video.Surface) ([]backend.InputEvent, error) {
	s.events = s.events[:0]
	s.currentFrame = frame

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		s.handleEvent(ev)
	}

	if err := s.renderFrame(frame); err != nil {
		return nil, err
	}

	events := make([]backend.InputEvent, len(s.events))
	copy(events, s.events)
	return events, nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		if s.config.Callbacks.OnQuit != nil {
			s.config.Callbacks.OnQuit()
		}
		s.events = append(s.events, backend.Press(action.SystemQuit))

	case *sdl.KeyboardEvent:
		// Ignore key repeat events
		if e.Repeat != 0 {
			return
		}
		act, ok := keyMapping[e.Keysym.Sym]
		if !ok {
			return
		}

		if e.Type == sdl.KEYDOWN {
			if act == action.SystemSnapshot {
				debug.TakeSnapshot(s.currentFrame)
				return
			}
			s.events = append(s.events, backend.Press(act))
		} else if e.Type == sdl.KEYUP && action.GetInfo(act).Category == action.CategoryGameInput {
			s.events = append(s.events, backend.Release(act))
		}
	}
}

// keyMapping maps SDL2 keys to actions
var keyMapping = map[sdl.Keycode]action.Action{
	// Harness controls
	sdl.K_F9:     action.SystemSnapshot,
	sdl.K_ESCAPE: action.SystemQuit,
	sdl.K_SPACE:  action.SystemPauseToggle,
	sdl.K_m:      action.SystemAudioToggle,

	// Console controls
	sdl.K_z:     action.ButtonA,
	sdl.K_x:     action.ButtonB,
	sdl.K_UP:    action.ButtonUp,
	sdl.K_DOWN:  action.ButtonDown,
	sdl.K_LEFT:  action.ButtonLeft,
	sdl.K_RIGHT: action.ButtonRight,
	sdl.K_w:     action.ButtonUp,
	sdl.K_s:     action.ButtonDown,
	sdl.K_a:     action.ButtonLeft,
	sdl.K_d:     action.ButtonRight,
}

func (s *Backend) renderFrame(frame video.Surface) error {
	s.pixels = s.palette.fill(s.pixels, frame)

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), frame.Width()*bytesPerPixel); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	s.renderer.SetDrawColor(display.GrayscaleBlack, display.GrayscaleBlack, display.GrayscaleBlack, display.FullAlpha)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}
