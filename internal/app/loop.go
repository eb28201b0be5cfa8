package app

import (
	"log"
	"time"

	"gltut/internal/graphics"
	renderer "gltut/internal/graphics/renderer"
	"gltut/internal/input"
	"gltut/internal/motion"
	"gltut/internal/profiling"
	"gltut/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is what the loop needs from the window
type Surface interface {
	input.KeySource
	SwapBuffers()
	PollEvents()
	ShouldClose() bool
}

// FrameRenderer clears and draws one frame
type FrameRenderer interface {
	Render(ctx renderer.RenderContext)
	ToggleWireframe()
}

// Toggler is an optional on/off overlay
type Toggler interface {
	Toggle()
}

// Loop drives one scene until the user asks to exit
type Loop struct {
	Surface  Surface
	Renderer FrameRenderer
	Overlay  Toggler // may be nil
	Scene    scene.Description
	Clock    *motion.Clock
	Input    *input.InputManager
	Limiter  *FPSLimiter

	LogFPS    bool
	SlowFrame time.Duration // 0 disables slow-frame logging

	proj   mgl32.Mat4
	frames profiling.FrameCounter
	last   time.Time
	count  int
}

// Run renders frames until Escape is pressed or the window is asked to close
func (l *Loop) Run() {
	for {
		l.Frame()
		if l.exitRequested() {
			return
		}
	}
}

// Frames returns the number of frames rendered so far
func (l *Loop) Frames() int { return l.count }

// Frame renders and presents one frame, then processes input
func (l *Loop) Frame() {
	if l.count == 0 {
		l.proj = l.Scene.ProjectionMatrix()
		l.last = time.Now()
	}
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(l.last)
	l.last = now

	t := l.Clock.Advance(dt)

	view := l.Scene.View(t)
	ctx := renderer.RenderContext{
		Proj:   l.proj,
		View:   view,
		Model:  l.Scene.Model,
		MVP:    graphics.MVP(l.proj, view, l.Scene.Model),
		Time:   t,
		Paused: l.Clock.Paused(),
		FPS:    l.frames.FPS(),
	}

	func() { defer profiling.Track("loop.render")(); l.Renderer.Render(ctx) }()
	func() { defer profiling.Track("glfw.SwapBuffers")(); l.Surface.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); l.Surface.PollEvents() }()

	l.Input.Poll(l.Surface)
	l.handleToggles()
	l.count++

	if l.frames.Tick(time.Now()) && l.LogFPS {
		log.Printf("FPS: %d", l.frames.FPS())
	}
	if frameDur := time.Since(now); l.SlowFrame > 0 && frameDur > l.SlowFrame {
		log.Printf("Slow frame: %v (render %v). Top tasks: %s", frameDur, profiling.SumWithPrefix("renderer."), profiling.TopN(3))
	}

	if l.Limiter != nil {
		l.Limiter.Wait(l.Clock.Paused())
	}
}

func (l *Loop) handleToggles() {
	if l.Input.JustPressed(input.ActionTogglePause) {
		l.Clock.TogglePause()
	}
	if l.Input.JustPressed(input.ActionToggleWireframe) {
		l.Renderer.ToggleWireframe()
	}
	if l.Overlay != nil && l.Input.JustPressed(input.ActionToggleHUD) {
		l.Overlay.Toggle()
	}
}

func (l *Loop) exitRequested() bool {
	return l.Input.IsActive(input.ActionQuit) || l.Surface.ShouldClose()
}
