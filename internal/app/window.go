package app

import (
	"fmt"

	"gltut/internal/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the window + GL context handed to every stage of a run.
// Only one may be open at a time since it owns GLFW initialization.
type Window struct {
	*glfw.Window
}

// OpenWindow initializes GLFW, opens a 3.3 core-profile window and loads the GL
// entry points. On error nothing is left initialized.
func OpenWindow(s config.Settings, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Samples, s.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(s.Width, s.Height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to open GLFW window (OpenGL 3.3 core required): %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}

	// Ensure we can capture the escape key being pressed between polls
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)
	glfw.SwapInterval(s.SwapInterval)

	return &Window{Window: window}, nil
}

// PollEvents processes pending window events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// OnResize registers fn for framebuffer size changes and calls it once with the current size
func (w *Window) OnResize(fn func(width, height int)) {
	fn(w.GetFramebufferSize())
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// Close destroys the window and terminates GLFW
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
