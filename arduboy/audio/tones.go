package audio

import (
	"log/slog"
	"time"
)

// Tone is a single square wave note. A zero frequency is a rest.
type Tone struct {
	Frequency uint16
	Duration  time.Duration
}

// Tones plays one note at a time while sound is enabled. A new note replaces
// the one playing, and a note stops by itself once its duration has passed.
// A zero duration plays until NoTone or the next Tone.
type Tones struct {
	enabled func() bool
	now     func() time.Time

	current Tone
	playing bool
	until   time.Time
}

// NewTones returns a tone player gated by enabled. A nil enabled func means
// always enabled.
func NewTones(enabled func() bool) *Tones {
	if enabled == nil {
		enabled = func() bool { return true }
	}
	return &Tones{enabled: enabled, now: time.Now}
}

// Tone starts a note, replacing the current one. It reports false, and
// leaves the player untouched, when sound is off.
func (t *Tones) Tone(freq uint16, dur time.Duration) bool {
	if !t.enabled() {
		return false
	}
	if t.Playing() {
		slog.Debug("Tone replaced", "from", t.current.Frequency, "to", freq)
	}
	t.current = Tone{Frequency: freq, Duration: dur}
	t.playing = true
	t.until = t.now().Add(dur)
	return true
}

// NoTone stops the current note.
func (t *Tones) NoTone() {
	t.playing = false
	t.current = Tone{}
}

// Playing reports whether a note is still sounding.
func (t *Tones) Playing() bool {
	if !t.playing {
		return false
	}
	if t.current.Duration > 0 && !t.now().Before(t.until) {
		t.NoTone()
		return false
	}
	return true
}

// Current returns the note a backend should be sounding right now.
func (t *Tones) Current() (Tone, bool) {
	if !t.Playing() {
		return Tone{}, false
	}
	return t.current, true
}
