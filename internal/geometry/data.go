package geometry

// TwoTrianglesA and TwoTrianglesB are drawn directly in normalized device coordinates.
var (
	TwoTrianglesA = Shape{
		Name: "purple",
		Positions: []float32{
			-0.5, -0.4, 0.0,
			0.3, 0.0, 0.0,
			0.0, 0.2, 0.0,
		},
	}
	TwoTrianglesB = Shape{
		Name: "lightblue",
		Positions: []float32{
			0.8, 0.3, 0.0,
			-0.1, 0.0, 0.0,
			0.0, -0.7, 0.0,
		},
	}
)

// MovingTrianglesA and MovingTrianglesB are world-space triangles around the origin.
var (
	MovingTrianglesA = Shape{
		Name: "purple",
		Positions: []float32{
			0.9, -0.2, 0.3,
			0.4, 0.3, -0.8,
			-0.6, 0.2, 0.7,
		},
	}
	MovingTrianglesB = Shape{
		Name: "lightblue",
		Positions: []float32{
			0.3, -0.7, 0.1,
			-0.9, 0.9, 0.9,
			0.6, -0.2, -0.7,
		},
	}
)

// Polyhedron corners.
var (
	cornerA = [3]float32{1.0, 0.0, 0.0}
	cornerB = [3]float32{0.0, 1.0, 0.0}
	cornerC = [3]float32{-1.5, 0.0, 0.0}
	cornerD = [3]float32{0.0, -1.0, 0.0}
	cornerE = [3]float32{0.0, 0.0, 0.5}
	cornerF = [3]float32{0.0, 0.0, -1.5}
	cornerH = [3]float32{0.0, 0.0, 0.0}
)

// Polyhedron corner colours.
var (
	colorA = [3]float32{0.1, 0.2, 0.03}
	colorB = [3]float32{0.0, 0.5, 0.06}
	colorC = [3]float32{0.4, 0.8, 0.09}
	colorD = [3]float32{0.6, 0.8, 0.09}
	colorE = [3]float32{0.9, 0.5, 0.0}
	colorF = [3]float32{0.4, 0.5, 0.06}
	colorH = [3]float32{0.3, 0.6, 0.07}
)

type coloredVertex struct {
	pos, color [3]float32
}

var polyhedronFaces = [][3]coloredVertex{
	{{cornerC, colorC}, {cornerE, colorE}, {cornerD, colorD}},
	{{cornerD, colorD}, {cornerE, colorE}, {cornerA, colorA}},
	{{cornerA, colorA}, {cornerE, colorE}, {cornerB, colorB}},
	{{cornerD, colorD}, {cornerA, colorA}, {cornerF, colorF}},
	{{cornerD, colorD}, {cornerE, colorE}, {cornerF, colorF}},
	{{cornerC, colorC}, {cornerH, colorH}, {cornerD, colorD}},
	{{cornerC, colorC}, {cornerA, colorA}, {cornerE, colorE}},
	{{cornerA, colorA}, {cornerH, colorH}, {cornerB, colorB}},
	{{cornerE, colorE}, {cornerB, colorB}, {cornerH, colorH}},
	{{cornerH, colorH}, {cornerF, colorF}, {cornerA, colorA}},
}

// Polyhedron returns the 10-triangle figure with per-vertex colours.
// A fresh copy is built on every call so callers may mutate it.
func Polyhedron() Shape {
	s := Shape{
		Name:      "figure",
		Positions: make([]float32, 0, len(polyhedronFaces)*floatsPerTriangle),
		Colors:    make([]float32, 0, len(polyhedronFaces)*floatsPerTriangle),
	}
	for _, face := range polyhedronFaces {
		for _, v := range face {
			s.Positions = append(s.Positions, v.pos[:]...)
			s.Colors = append(s.Colors, v.color[:]...)
		}
	}
	return s
}
