package app

import (
	"testing"

	renderer "gltut/internal/graphics/renderer"
	"gltut/internal/input"
	"gltut/internal/motion"
	"gltut/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface scripts key presses and the close flag per frame
type fakeSurface struct {
	frame   int
	keys    map[int]glfw.Key // frame -> key held during that frame's poll
	closeAt int              // 0 = never
	swaps   int
	polls   int
}

func (s *fakeSurface) GetKey(key glfw.Key) glfw.Action {
	if k, ok := s.keys[s.frame]; ok && k == key {
		return glfw.Press
	}
	return glfw.Release
}

func (s *fakeSurface) SwapBuffers() { s.swaps++ }

func (s *fakeSurface) PollEvents() {
	s.polls++
	s.frame++
}

func (s *fakeSurface) ShouldClose() bool {
	return s.closeAt > 0 && s.frame >= s.closeAt
}

type fakeRenderer struct {
	contexts  []renderer.RenderContext
	wireframe int
}

func (r *fakeRenderer) Render(ctx renderer.RenderContext) { r.contexts = append(r.contexts, ctx) }
func (r *fakeRenderer) ToggleWireframe()                  { r.wireframe++ }

type fakeOverlay struct{ toggles int }

func (o *fakeOverlay) Toggle() { o.toggles++ }

func newTestLoop(t *testing.T, name string, surface *fakeSurface) (*Loop, *fakeRenderer, *fakeOverlay) {
	t.Helper()
	desc, err := scene.Lookup(name)
	require.NoError(t, err)
	r := &fakeRenderer{}
	o := &fakeOverlay{}
	return &Loop{
		Surface:  surface,
		Renderer: r,
		Overlay:  o,
		Scene:    desc,
		Clock:    motion.NewClock(motion.ModeFixed, 60),
		Input:    input.NewInputManager(),
	}, r, o
}

func TestLoopExitsOnWindowClose(t *testing.T) {
	s := &fakeSurface{closeAt: 5}
	l, r, _ := newTestLoop(t, scene.MovingFigure, s)

	l.Run()

	assert.Equal(t, 5, l.Frames())
	assert.Equal(t, 5, s.swaps)
	assert.Equal(t, 5, s.polls)
	require.Len(t, r.contexts, 5)
	for i, ctx := range r.contexts {
		assert.Equal(t, float32(i+1), ctx.Time)
	}
}

func TestLoopExitsOnEscape(t *testing.T) {
	s := &fakeSurface{keys: map[int]glfw.Key{3: glfw.KeyEscape}}
	l, _, _ := newTestLoop(t, scene.TwoTriangles, s)

	l.Run()

	assert.Equal(t, 3, l.Frames())
}

func TestLoopMVPMatchesSceneTransform(t *testing.T) {
	s := &fakeSurface{closeAt: 3}
	l, r, _ := newTestLoop(t, scene.MovingTriangles, s)

	l.Run()

	for _, ctx := range r.contexts {
		want := l.Scene.Transform(ctx.Time)
		assert.True(t, ctx.MVP.ApproxEqualThreshold(want, 1e-5))
		assert.True(t, ctx.MVP.ApproxEqualThreshold(ctx.Proj.Mul4(ctx.View).Mul4(ctx.Model), 1e-5))
	}
}

func TestLoopToggles(t *testing.T) {
	s := &fakeSurface{
		closeAt: 6,
		keys: map[int]glfw.Key{
			1: glfw.KeySpace, // pause after frame 1
			3: glfw.KeySpace, // resume after frame 3
			4: glfw.KeyF,
			5: glfw.KeyH,
		},
	}
	l, r, o := newTestLoop(t, scene.MovingFigure, s)

	l.Run()

	times := make([]float32, 0, len(r.contexts))
	for _, ctx := range r.contexts {
		times = append(times, ctx.Time)
	}
	// the toggle takes effect on the frame after the key is seen
	assert.Equal(t, []float32{1, 1, 1, 2, 3, 4}, times)
	assert.False(t, r.contexts[0].Paused)
	assert.True(t, r.contexts[1].Paused)
	assert.True(t, r.contexts[2].Paused)
	assert.False(t, r.contexts[3].Paused)
	assert.Equal(t, 1, r.wireframe)
	assert.Equal(t, 1, o.toggles)
}

func TestTwoTrianglesFrameUsesIdentity(t *testing.T) {
	s := &fakeSurface{closeAt: 1}
	l, r, _ := newTestLoop(t, scene.TwoTriangles, s)
	l.Run()
	require.Len(t, r.contexts, 1)
	assert.Equal(t, mgl32.Ident4(), r.contexts[0].MVP)
}
