package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockKeepsAdvancingPastFloat32Precision(t *testing.T) {
	c := NewClock(ModeFixed, 0)
	c.frames = 1 << 24
	c.t = float64(c.frames)

	start := c.Now()
	c.Advance(0)
	c.Advance(0)

	assert.Equal(t, uint64(1<<24+2), c.frames)
	assert.Greater(t, c.Now(), start)
}
