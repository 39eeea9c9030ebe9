package input

import (
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/input/event"
)

// Manager routes backend input into button state and system callbacks
type Manager struct {
	handlers map[action.Action]map[event.Type][]func()
	buttons  *Buttons
}

func NewManager(buttons *Buttons) *Manager {
	return &Manager{
		handlers: make(map[action.Action]map[event.Type][]func()),
		buttons:  buttons,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}

	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	// console buttons go straight into the button state
	if m.buttons != nil {
		if button := ButtonFor(act); button != 0 {
			switch evt {
			case event.Press:
				m.buttons.Set(button)
			case event.Release:
				m.buttons.Unset(button)
			}
			return
		}
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}
