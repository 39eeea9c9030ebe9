// Package audio holds the console's sound enable flag and a queue of tones
// for backends that can play them.
package audio

import "log/slog"

// Control is the part of Audio that add-ons are allowed to drive.
type Control interface {
	On()
	Off()
	Enabled() bool
}

// Audio tracks whether sound output is enabled. The saved setting is what
// Begin restores, standing in for the value kept in EEPROM on hardware.
type Audio struct {
	enabled bool
	saved   bool
}

// New returns audio control with sound initially saved as enabled.
func New() *Audio {
	return &Audio{saved: true}
}

// Begin restores the saved on/off setting.
func (a *Audio) Begin() {
	a.enabled = a.saved
}

func (a *Audio) On() {
	a.enabled = true
}

func (a *Audio) Off() {
	a.enabled = false
}

// Toggle flips sound output and returns the new state.
func (a *Audio) Toggle() bool {
	a.enabled = !a.enabled
	slog.Debug("audio toggled", "enabled", a.enabled)
	return a.enabled
}

func (a *Audio) Enabled() bool {
	return a.enabled
}

// SaveOnOff records the current setting so the next Begin restores it.
func (a *Audio) SaveOnOff() {
	a.saved = a.enabled
}
