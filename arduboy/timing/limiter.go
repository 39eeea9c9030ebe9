package timing

import (
	"time"

	"github.com/valerio/go-arduboy/arduboy/display"
)

// Limiter controls frame rate timing for the game loop.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses or rate changes.
	Reset()

	// SetFrameRate changes the target rate in frames per second.
	SetFrameRate(rate int)
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}
func (n *noOpLimiter) SetFrameRate(int)  {}

// FrameDuration returns the target duration of a single frame at rate
// frames per second. Non-positive rates fall back to the default rate.
func FrameDuration(rate int) time.Duration {
	if rate <= 0 {
		rate = display.DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// Kind names a limiter implementation, as selected on the command line.
type Kind string

const (
	KindNone     Kind = "none"
	KindTicker   Kind = "ticker"
	KindAdaptive Kind = "adaptive"
)

// New returns a limiter of the given kind running at rate. Unknown kinds
// get the adaptive limiter.
func New(kind Kind, rate int) Limiter {
	switch kind {
	case KindNone:
		return NewNoOpLimiter()
	case KindTicker:
		return NewTickerLimiter(rate)
	default:
		return NewAdaptiveLimiter(rate)
	}
}
