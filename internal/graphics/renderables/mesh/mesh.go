package mesh

import (
	"fmt"
	"io/fs"

	"gltut/internal/graphics"
	renderer "gltut/internal/graphics/renderer"
	"gltut/internal/profiling"
	"gltut/internal/scene"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Attribute locations; must match the layout qualifiers in the vertex shaders.
const (
	PositionAttrib uint32 = 0
	ColorAttrib    uint32 = 1
)

// MVPUniform is the name of the combined-transform uniform.
const MVPUniform = "MVP"

// Mesh draws one scene target as a triangle list
type Mesh struct {
	target  scene.Target
	shaders fs.FS

	shader    *graphics.Shader
	positions *graphics.VertexBuffer
	colors    *graphics.VertexBuffer
	mvp       int32
}

// NewMesh creates a mesh renderable; GL resources are created in Init
func NewMesh(shaders fs.FS, target scene.Target) *Mesh {
	return &Mesh{target: target, shaders: shaders, mvp: -1}
}

// Init compiles the program and uploads the static buffers
func (m *Mesh) Init() error {
	var err error
	m.shader, err = graphics.NewShader(m.shaders, m.target.VertexShader, m.target.FragmentShader)
	if err != nil {
		return fmt.Errorf("mesh %s: %w", m.target.Name, err)
	}
	if m.target.UseMVP {
		m.mvp = m.shader.UniformLocation(MVPUniform)
		if m.mvp < 0 {
			m.shader.Delete()
			return fmt.Errorf("mesh %s: program has no active %q uniform", m.target.Name, MVPUniform)
		}
	}

	m.positions = graphics.NewVertexBuffer(m.target.Shape.Positions)
	if m.target.Shape.HasColors() {
		m.colors = graphics.NewVertexBuffer(m.target.Shape.Colors)
	}
	return nil
}

// Render issues the draw call for this target
func (m *Mesh) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.mesh." + m.target.Name)()

	m.shader.Use()
	if m.mvp >= 0 {
		gl.UniformMatrix4fv(m.mvp, 1, false, &ctx.MVP[0])
	}

	m.positions.Bind(PositionAttrib)
	if m.colors != nil {
		m.colors.Bind(ColorAttrib)
	}

	gl.DrawArrays(gl.TRIANGLES, 0, m.positions.Count)

	m.positions.Unbind(PositionAttrib)
	if m.colors != nil {
		m.colors.Unbind(ColorAttrib)
	}
}

// Dispose cleans up OpenGL resources
func (m *Mesh) Dispose() {
	if m.colors != nil {
		m.colors.Delete()
	}
	if m.positions != nil {
		m.positions.Delete()
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}
