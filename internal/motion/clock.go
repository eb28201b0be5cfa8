package motion

import (
	"fmt"
	"time"
)

// Mode selects how the animation accumulator advances.
type Mode string

const (
	// ModeFixed advances by one reference frame per rendered frame, so
	// animation speed follows the display refresh rate.
	ModeFixed Mode = "fixed"
	// ModeDelta advances by elapsed wall-clock time scaled to reference frames.
	ModeDelta Mode = "delta"
)

// DefaultReferenceHz is the frame rate the per-frame constants were tuned for.
const DefaultReferenceHz = 60

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFixed, ModeDelta:
		return Mode(s), nil
	case "":
		return ModeFixed, nil
	}
	return "", fmt.Errorf("unknown animation mode %q (want %q or %q)", s, ModeFixed, ModeDelta)
}

// Clock is the scalar time accumulator driving camera paths. Its unit is the
// reference frame: t advances by 1 for each frame at ReferenceHz.
type Clock struct {
	Mode        Mode
	ReferenceHz float64

	frames uint64
	t      float64
	paused bool
}

// NewClock returns a clock at t=0.
func NewClock(mode Mode, referenceHz float64) *Clock {
	if referenceHz <= 0 {
		referenceHz = DefaultReferenceHz
	}
	return &Clock{Mode: mode, ReferenceHz: referenceHz}
}

// Advance moves the accumulator forward for one rendered frame that took dt
// and returns the new value. dt is ignored in fixed mode.
func (c *Clock) Advance(dt time.Duration) float32 {
	if c.paused {
		return c.Now()
	}
	switch c.Mode {
	case ModeDelta:
		if dt > 0 {
			c.t += dt.Seconds() * c.ReferenceHz
		}
	default:
		c.frames++
		c.t = float64(c.frames)
	}
	return c.Now()
}

// Now returns the accumulator without advancing it.
func (c *Clock) Now() float32 { return float32(c.t) }

// Paused reports whether the accumulator is frozen.
func (c *Clock) Paused() bool { return c.paused }

// TogglePause freezes or resumes the accumulator.
func (c *Clock) TogglePause() { c.paused = !c.paused }
