package scene

import (
	"gltut/internal/geometry"
	"gltut/internal/graphics"
	"gltut/internal/motion"

	"github.com/go-gl/mathgl/mgl32"
)

// Built-in scene names
const (
	TwoTriangles    = "two-triangles"
	MovingTriangles = "moving-triangles"
	MovingFigure    = "moving-figure"
)

// Shader file names
const (
	SimpleVertexShader      = "SimpleVertexShader.vertexshader"
	TransformVertexShader   = "TransformVertexShader.vertexshader"
	PurpleFragmentShader    = "PurpleFragmentShader.fragmentshader"
	LightblueFragmentShader = "LightblueFragmentShader.fragmentshader"
	ColorFragmentShader     = "ColorFragmentShader.fragmentshader"
)

func twoTriangles() Description {
	return Description{
		Name:       TwoTriangles,
		Title:      "Two triangles",
		ClearColor: mgl32.Vec4{0, 0, 0.1, 0},
		Blend:      true,
		Model:      mgl32.Ident4(),
		Targets: []Target{
			{Name: "purple", VertexShader: SimpleVertexShader, FragmentShader: PurpleFragmentShader, Shape: geometry.TwoTrianglesA},
			{Name: "lightblue", VertexShader: SimpleVertexShader, FragmentShader: LightblueFragmentShader, Shape: geometry.TwoTrianglesB},
		},
	}
}

func movingTriangles() Description {
	return Description{
		Name:       MovingTriangles,
		Title:      "Moving triangles",
		ClearColor: mgl32.Vec4{0, 0, 0.4, 0},
		DepthTest:  true,
		Blend:      true,
		Projection: graphics.DefaultProjection(),
		Model:      mgl32.Ident4(),
		Camera:     motion.CircularOrbit(5, 0, motion.WobblePhase{Step: 0.01, Drift: 0.05, Amplitude: 3}),
		Targets: []Target{
			{Name: "purple", VertexShader: TransformVertexShader, FragmentShader: PurpleFragmentShader, Shape: geometry.MovingTrianglesA, UseMVP: true},
			{Name: "lightblue", VertexShader: TransformVertexShader, FragmentShader: LightblueFragmentShader, Shape: geometry.MovingTrianglesB, UseMVP: true},
		},
	}
}

func movingFigure() Description {
	return Description{
		Name:       MovingFigure,
		Title:      "Moving figure",
		ClearColor: mgl32.Vec4{0, 0, 0.4, 0},
		DepthTest:  true,
		Projection: graphics.DefaultProjection(),
		Model:      mgl32.Ident4(),
		// the far side of the orbit is stretched along Z and travels clockwise seen from above
		Camera: motion.Orbit{RadiusX: 5, RadiusZ: -7, Height: 1.5, Phase: motion.LinearPhase{Rate: 0.02}},
		Targets: []Target{
			{Name: "figure", VertexShader: TransformVertexShader, FragmentShader: ColorFragmentShader, Shape: geometry.Polyhedron(), UseMVP: true},
		},
	}
}
