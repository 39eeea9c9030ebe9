package backend

import (
	"github.com/valerio/go-arduboy/arduboy/input"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/input/event"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Backend represents a complete presentation platform (rendering + input)
// Backends are responsible for:
// - Presenting frames on their specific output (terminal, SDL window, OLED, files)
// - Translating platform-specific input events to Actions
// - Handling backend-specific features (snapshots, log panels)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config Config) error

	// Update presents the frame and returns the input collected since the
	// previous call. Backends should:
	// 1. Poll for platform-specific events (keyboard, window events, etc.)
	// 2. Translate events to InputEvents
	// 3. Present the provided frame
	Update(frame video.Surface) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// Config holds configuration for backends
type Config struct {
	Title        string
	Scale        int
	Ink          string         // colour of lit pixels, "#rrggbb"
	Paper        string         // colour of unlit pixels, "#rrggbb"
	Callbacks    Callbacks      // Callbacks for backend communication
	InputManager *input.Manager // Shared input manager, may be nil
}

// Callbacks allows backends to communicate with the running game
type Callbacks struct {
	// Backend requests shutdown (e.g., window close)
	OnQuit func()
}

// InputEvent is a single input action observed by a backend
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// Press is shorthand for a press event of act.
func Press(act action.Action) InputEvent {
	return InputEvent{Action: act, Type: event.Press}
}

// Release is shorthand for a release event of act.
func Release(act action.Action) InputEvent {
	return InputEvent{Action: act, Type: event.Release}
}
