package timing

import (
	"log/slog"
	"time"
)

// AdaptiveLimiter uses precise timing with drift compensation.
// Combines sleep for efficiency with busy-waiting for accuracy.
type AdaptiveLimiter struct {
	targetFrameTime time.Duration
	nextFrameTime   time.Time
	frameCounter    int64
	now             func() time.Time
	sleep           func(time.Duration)
}

func NewAdaptiveLimiter(rate int) *AdaptiveLimiter {
	return &AdaptiveLimiter{
		targetFrameTime: FrameDuration(rate),
		nextFrameTime:   time.Now(),
		now:             time.Now,
		sleep:           time.Sleep,
	}
}

func (a *AdaptiveLimiter) WaitForNextFrame() {
	now := a.now()
	sleepTime := a.nextFrameTime.Sub(now)

	if sleepTime > 0 {
		if sleepTime >= 2*time.Millisecond {
			a.sleep(sleepTime - time.Millisecond)
		}
		for a.now().Before(a.nextFrameTime) {
			// busy-wait the last millisecond, higher accuracy.
		}
	} else if sleepTime < -5*time.Millisecond {
		// too far behind, don't try to catch up
		a.nextFrameTime = now
	}

	a.nextFrameTime = a.nextFrameTime.Add(a.targetFrameTime)
	a.frameCounter++

	if a.frameCounter%60 == 0 {
		drift := a.now().Sub(a.nextFrameTime)
		if drift.Abs() > 10*time.Millisecond {
			a.nextFrameTime = a.nextFrameTime.Add(drift / 10)
			slog.Debug("Frame timing drift correction", "drift_ms", drift.Milliseconds())
		}
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.nextFrameTime = a.now()
	a.frameCounter = 0
}

func (a *AdaptiveLimiter) SetFrameRate(rate int) {
	a.targetFrameTime = FrameDuration(rate)
	a.Reset()
}
