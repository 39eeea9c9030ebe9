package action

// Action represents input actions that can be performed while a game runs
type Action int

const (
	// Console buttons
	ButtonUp Action = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB

	// Harness features
	SystemSnapshot
	SystemAudioToggle
	SystemPauseToggle
	SystemQuit
)

// Category groups actions by who consumes them
type Category int

const (
	CategoryGameInput Category = iota
	CategorySystem
)

// Info describes an action for logs and help screens
type Info struct {
	Description string
	Category    Category
}

var infos = map[Action]Info{
	ButtonUp:          {"Up", CategoryGameInput},
	ButtonDown:        {"Down", CategoryGameInput},
	ButtonLeft:        {"Left", CategoryGameInput},
	ButtonRight:       {"Right", CategoryGameInput},
	ButtonA:           {"A", CategoryGameInput},
	ButtonB:           {"B", CategoryGameInput},
	SystemSnapshot:    {"Snapshot", CategorySystem},
	SystemAudioToggle: {"Toggle audio", CategorySystem},
	SystemPauseToggle: {"Pause", CategorySystem},
	SystemQuit:        {"Quit", CategorySystem},
}

// GetInfo returns the description of an action.
func GetInfo(act Action) Info {
	if info, ok := infos[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategorySystem}
}

func (a Action) String() string {
	return GetInfo(a).Description
}
