package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAudioOnOff(t *testing.T) {
	a := New()
	assert.False(t, a.Enabled(), "off until Begin")

	a.Begin()
	assert.True(t, a.Enabled())

	a.Off()
	assert.False(t, a.Enabled())
	assert.True(t, a.Toggle())
	assert.False(t, a.Toggle())
}

func TestSaveOnOffIsRestoredByBegin(t *testing.T) {
	a := New()
	a.Begin()
	a.Off()
	a.SaveOnOff()

	a.On()
	a.Begin()
	assert.False(t, a.Enabled())
}

func TestAudioImplementsControl(t *testing.T) {
	var c Control = New()
	c.On()
	assert.True(t, c.Enabled())
}

// fakeClock is advanced by hand so expiry is deterministic.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestTones(enabled func() bool) (*Tones, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	tones := NewTones(enabled)
	tones.now = clock.now
	return tones, clock
}

func TestTonesRespectEnable(t *testing.T) {
	a := New()
	tones, _ := newTestTones(a.Enabled)

	assert.False(t, tones.Tone(440, 100*time.Millisecond), "sound is off")
	assert.False(t, tones.Playing())

	a.On()
	assert.True(t, tones.Tone(440, 100*time.Millisecond))
	assert.True(t, tones.Playing())

	tones.NoTone()
	assert.False(t, tones.Playing())
	_, ok := tones.Current()
	assert.False(t, ok)
}

func TestToneReplacesCurrentNote(t *testing.T) {
	tones, _ := newTestTones(nil)

	assert.True(t, tones.Tone(440, 100*time.Millisecond))
	assert.True(t, tones.Tone(110, 50*time.Millisecond))

	current, ok := tones.Current()
	assert.True(t, ok)
	assert.Equal(t, Tone{Frequency: 110, Duration: 50 * time.Millisecond}, current)
}

func TestToneExpiresAfterDuration(t *testing.T) {
	tones, clock := newTestTones(nil)

	tones.Tone(880, 30*time.Millisecond)
	clock.t = clock.t.Add(29 * time.Millisecond)
	assert.True(t, tones.Playing())

	clock.t = clock.t.Add(time.Millisecond)
	assert.False(t, tones.Playing())
	_, ok := tones.Current()
	assert.False(t, ok)
}

func TestZeroDurationToneHoldsUntilStopped(t *testing.T) {
	tones, clock := newTestTones(nil)

	tones.Tone(220, 0)
	clock.t = clock.t.Add(time.Hour)
	assert.True(t, tones.Playing())

	tones.NoTone()
	assert.False(t, tones.Playing())
}

func TestManyTonesAreNeverDropped(t *testing.T) {
	tones, clock := newTestTones(nil)

	for i := 0; i < 100; i++ {
		assert.True(t, tones.Tone(880, 30*time.Millisecond), "tone %d", i)
		clock.t = clock.t.Add(10 * time.Millisecond)
	}
	assert.True(t, tones.Playing())

	clock.t = clock.t.Add(time.Second)
	assert.False(t, tones.Playing())
}
