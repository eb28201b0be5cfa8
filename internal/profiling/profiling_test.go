package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	Track("a")()
	Track("a")()
	_, ok := Snapshot()["a"]
	assert.True(t, ok)

	ResetFrame()
	assert.Empty(t, Snapshot())
}

func TestTopNOrdering(t *testing.T) {
	ResetFrame()
	record("renderer.mesh.figure", 4200*time.Microsecond)
	record("glfw.SwapBuffers", 2*time.Millisecond)
	record("glfw.PollEvents", 100*time.Microsecond)

	assert.Equal(t, "renderer.mesh.figure:4.2ms, glfw.SwapBuffers:2ms", TopN(2))
	assert.Equal(t, "renderer.mesh.figure:4.2ms, glfw.SwapBuffers:2ms, glfw.PollEvents:0.1ms", TopN(10))
	assert.Equal(t, 2100*time.Microsecond, SumWithPrefix("glfw."))
	ResetFrame()
}

func TestFrameCounter(t *testing.T) {
	var c FrameCounter
	start := time.Unix(1000, 0)

	for i := 0; i < 59; i++ {
		assert.False(t, c.Tick(start.Add(time.Duration(i)*time.Second/60)))
	}
	assert.True(t, c.Tick(start.Add(time.Second)))
	assert.Equal(t, 60, c.FPS())

	// a slow second
	assert.False(t, c.Tick(start.Add(1500*time.Millisecond)))
	assert.True(t, c.Tick(start.Add(3*time.Second)))
	assert.Equal(t, 1, c.FPS())
}
