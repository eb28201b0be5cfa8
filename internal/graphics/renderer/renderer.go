package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the fixed-function configuration applied once at startup
type State struct {
	ClearColor mgl32.Vec4
	DepthTest  bool
	Blend      bool
}

// Renderer clears the frame and renders its renderables in order
type Renderer struct {
	renderables []Renderable
	state       State
	wireframe   bool
	width       int
	height      int
}

// NewRenderer configures OpenGL and initializes every renderable. On error the
// renderables that were already initialized are disposed.
func NewRenderer(state State, rs ...Renderable) (*Renderer, error) {
	c := state.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	if state.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		// Accept fragment if it is closer to the camera than the former one
		gl.DepthFunc(gl.LESS)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if state.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	r := &Renderer{state: state}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		r.renderables = append(r.renderables, rr)
	}
	return r, nil
}

// ClearMask returns the buffers cleared each frame
func (r *Renderer) ClearMask() uint32 {
	if r.state.DepthTest {
		return gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT
	}
	return gl.COLOR_BUFFER_BIT
}

// Render clears the screen and renders every feature
func (r *Renderer) Render(ctx RenderContext) {
	gl.Clear(r.ClearMask())

	ctx.Width, ctx.Height = r.width, r.height
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// ToggleWireframe switches between filled and outlined polygons
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetViewport follows framebuffer size changes
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}
