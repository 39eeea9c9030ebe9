package input

import "github.com/valerio/go-arduboy/arduboy/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Console controls
	"Up":    action.ButtonUp,
	"Down":  action.ButtonDown,
	"Left":  action.ButtonLeft,
	"Right": action.ButtonRight,
	"z":     action.ButtonA,
	"x":     action.ButtonB,

	// Alternative arrow keys (WASD)
	"w": action.ButtonUp,
	"s": action.ButtonDown,
	"a": action.ButtonLeft,
	"d": action.ButtonRight,

	// Harness controls
	"F9":     action.SystemSnapshot,
	"m":      action.SystemAudioToggle,
	"p":      action.SystemPauseToggle,
	"Space":  action.SystemPauseToggle,
	"Escape": action.SystemQuit,
	"q":      action.SystemQuit,
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
