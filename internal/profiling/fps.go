package profiling

import "time"

// FrameCounter counts presented frames and computes a rate once per second.
type FrameCounter struct {
	frames int
	since  time.Time
	fps    int
}

// Tick records a frame presented at now and reports whether the rate was refreshed.
func (c *FrameCounter) Tick(now time.Time) bool {
	if c.since.IsZero() {
		c.since = now
	}
	c.frames++
	elapsed := now.Sub(c.since)
	if elapsed < time.Second {
		return false
	}
	c.fps = int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.since = now
	return true
}

// FPS returns the last computed rate.
func (c *FrameCounter) FPS() int { return c.fps }
