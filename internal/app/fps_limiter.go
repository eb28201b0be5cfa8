package app

import (
	"gltut/internal/config"
	"time"
)

// pausedFPS caps the frame rate while the animation is frozen
const pausedFPS = 30

// FPSLimiter provides high-precision frame rate limiting on top of vsync
type FPSLimiter struct {
	next time.Time

	limit func() int
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a limiter reading the process-wide cap from config
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit, now: time.Now, sleep: time.Sleep}
}

// EffectiveLimit returns the cap in frames per second, 0 meaning uncapped
func (f *FPSLimiter) EffectiveLimit(paused bool) int {
	limit := f.limit()
	if paused && (limit <= 0 || limit > pausedFPS) {
		return pausedFPS
	}
	return max(limit, 0)
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(paused bool) {
	effectiveLimit := f.EffectiveLimit(paused)
	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			f.sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if !f.next.After(f.now()) {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}
