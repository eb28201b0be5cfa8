package scene

import (
	"errors"
	"fmt"
	"sort"

	"gltut/internal/geometry"
	"gltut/internal/graphics"
	"gltut/internal/motion"

	"github.com/go-gl/mathgl/mgl32"
)

// Target is one draw call: a shader pair and the buffers it reads
type Target struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Shape          geometry.Shape
	// UseMVP uploads the combined transform to the "MVP" uniform before drawing.
	UseMVP bool
}

// Description is everything the render loop needs to draw one demo
type Description struct {
	Name       string
	Title      string
	ClearColor mgl32.Vec4
	DepthTest  bool
	Blend      bool

	Projection graphics.Projection
	Model      mgl32.Mat4
	Camera     motion.Path

	Targets []Target
}

// Validate checks the description before any GL resources are created
func (d Description) Validate() error {
	if d.Name == "" {
		return errors.New("scene: empty name")
	}
	if len(d.Targets) == 0 {
		return fmt.Errorf("scene %s: no draw targets", d.Name)
	}
	usesMVP := false
	for i, t := range d.Targets {
		if t.VertexShader == "" || t.FragmentShader == "" {
			return fmt.Errorf("scene %s: target %d (%s) is missing a shader", d.Name, i, t.Name)
		}
		if err := t.Shape.Validate(); err != nil {
			return fmt.Errorf("scene %s: target %d: %w", d.Name, i, err)
		}
		usesMVP = usesMVP || t.UseMVP
	}
	if usesMVP {
		if err := d.Projection.Validate(); err != nil {
			return fmt.Errorf("scene %s: %w", d.Name, err)
		}
		if d.Camera == nil {
			return fmt.Errorf("scene %s: targets use MVP but no camera path is set", d.Name)
		}
	}
	return nil
}

// ProjectionMatrix returns the perspective matrix, or identity for scenes drawn
// directly in normalized device coordinates
func (d Description) ProjectionMatrix() mgl32.Mat4 {
	if d.Projection == (graphics.Projection{}) {
		return mgl32.Ident4()
	}
	return d.Projection.Matrix()
}

// View returns the camera matrix at clock value t
func (d Description) View(t float32) mgl32.Mat4 {
	if d.Camera == nil {
		return mgl32.Ident4()
	}
	return graphics.LookAt(d.Camera.Eye(t))
}

// Transform returns Projection x View(t) x Model
func (d Description) Transform(t float32) mgl32.Mat4 {
	return graphics.MVP(d.ProjectionMatrix(), d.View(t), d.Model)
}

var registry = map[string]func() Description{
	TwoTriangles:    twoTriangles,
	MovingTriangles: movingTriangles,
	MovingFigure:    movingFigure,
}

// Lookup returns a fresh copy of a built-in scene
func Lookup(name string) (Description, error) {
	build, ok := registry[name]
	if !ok {
		return Description{}, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(), nil
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
