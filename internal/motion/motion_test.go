package motion_test

import (
	"math"
	"testing"
	"time"

	"gltut/internal/motion"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedClockIgnoresWallTime(t *testing.T) {
	c := motion.NewClock(motion.ModeFixed, 60)
	assert.Equal(t, float32(1), c.Advance(time.Second))
	assert.Equal(t, float32(2), c.Advance(0))
	assert.Equal(t, float32(3), c.Advance(time.Millisecond))
}

func TestDeltaClockFollowsWallTime(t *testing.T) {
	c := motion.NewClock(motion.ModeDelta, 60)
	got := c.Advance(500 * time.Millisecond)
	assert.InDelta(t, 30, got, 1e-4)
	got = c.Advance(-time.Second)
	assert.InDelta(t, 30, got, 1e-4, "negative durations must not rewind")
}

func TestDefaultReferenceHz(t *testing.T) {
	c := motion.NewClock(motion.ModeDelta, 0)
	assert.Equal(t, float64(motion.DefaultReferenceHz), c.ReferenceHz)
}

func TestClockPause(t *testing.T) {
	c := motion.NewClock(motion.ModeFixed, 60)
	c.Advance(0)
	c.TogglePause()
	require.True(t, c.Paused())
	assert.Equal(t, float32(1), c.Advance(0))
	assert.Equal(t, float32(1), c.Now())
	c.TogglePause()
	assert.Equal(t, float32(2), c.Advance(0))
}

func TestParseMode(t *testing.T) {
	m, err := motion.ParseMode("delta")
	require.NoError(t, err)
	assert.Equal(t, motion.ModeDelta, m)

	m, err = motion.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, motion.ModeFixed, m)

	_, err = motion.ParseMode("variable")
	assert.Error(t, err)
}

func TestCircularOrbitKeepsRadius(t *testing.T) {
	phases := []motion.Phase{
		motion.LinearPhase{Rate: 0.02},
		motion.WobblePhase{Step: 0.01, Drift: 0.05, Amplitude: 3},
	}
	for _, phase := range phases {
		o := motion.CircularOrbit(5, 0, phase)
		require.True(t, o.Circular())
		for i := 0; i < 2000; i += 7 {
			eye := o.Eye(float32(i))
			r := math.Hypot(float64(eye.X()), float64(eye.Z()))
			assert.InDelta(t, 5.0, r, 1e-5, "t=%d", i)
			assert.Equal(t, float32(0), eye.Y())
		}
	}
}

func TestEllipticalOrbit(t *testing.T) {
	o := motion.Orbit{RadiusX: 5, RadiusZ: -7, Height: 1.5, Phase: motion.LinearPhase{Rate: 0.02}}
	assert.False(t, o.Circular())

	eye := o.Eye(0)
	assert.True(t, eye.ApproxEqual(mgl32.Vec3{5, 1.5, 0}))

	// a quarter turn lands on the negative Z axis
	quarter := float32(math.Pi/2) / 0.02
	eye = o.Eye(quarter)
	assert.InDelta(t, 0, eye.X(), 1e-4)
	assert.InDelta(t, -7, eye.Z(), 1e-4)
}

func TestWobblePhase(t *testing.T) {
	p := motion.WobblePhase{Step: 0.01, Drift: 0.05, Amplitude: 3}
	assert.Equal(t, float32(0), p.Angle(0))
	// first frame of the original loop: step=0.01, add=0.05
	want := float32(math.Abs(math.Sin(0.005)))*3 + 0.05
	assert.InDelta(t, want, p.Angle(1), 1e-6)
}

func TestStaticPath(t *testing.T) {
	s := motion.Static{Position: mgl32.Vec3{4, 3, -3}}
	assert.Equal(t, mgl32.Vec3{4, 3, -3}, s.Eye(123))
}
