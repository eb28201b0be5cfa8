package geometry_test

import (
	"math"
	"testing"

	"gltut/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinShapesAreValid(t *testing.T) {
	shapes := []geometry.Shape{
		geometry.TwoTrianglesA,
		geometry.TwoTrianglesB,
		geometry.MovingTrianglesA,
		geometry.MovingTrianglesB,
		geometry.Polyhedron(),
	}
	for _, s := range shapes {
		require.NoError(t, s.Validate(), s.Name)
		assert.Zero(t, len(s.Positions)%3, "%s positions not divisible by 3", s.Name)
		if s.HasColors() {
			assert.Len(t, s.Colors, len(s.Positions), s.Name)
		}
	}
}

func TestSingleTriangles(t *testing.T) {
	for _, s := range []geometry.Shape{geometry.TwoTrianglesA, geometry.MovingTrianglesB} {
		if s.TriangleCount() != 1 {
			t.Errorf("%s: expected 1 triangle, got %d", s.Name, s.TriangleCount())
		}
		if s.VertexCount() != 3 {
			t.Errorf("%s: expected 3 vertices, got %d", s.Name, s.VertexCount())
		}
		if s.HasColors() {
			t.Errorf("%s: unexpected colour buffer", s.Name)
		}
	}
}

func TestPolyhedronLayout(t *testing.T) {
	p := geometry.Polyhedron()

	assert.Len(t, p.Positions, 10*3*3)
	assert.Len(t, p.Colors, 10*3*3)
	assert.Equal(t, 10, p.TriangleCount())
	assert.Equal(t, int32(30), p.VertexCount())

	// first vertex is C with C's colour, last is A with A's colour
	assert.Equal(t, []float32{-1.5, 0, 0}, p.Positions[0:3])
	assert.Equal(t, []float32{0.4, 0.8, 0.09}, p.Colors[0:3])
	assert.Equal(t, []float32{1, 0, 0}, p.Positions[87:90])
	assert.Equal(t, []float32{0.1, 0.2, 0.03}, p.Colors[87:90])
}

func TestPolyhedronCornerColoursAreConsistent(t *testing.T) {
	p := geometry.Polyhedron()
	seen := map[[3]float32][3]float32{}
	for i := 0; i < len(p.Positions); i += 3 {
		var pos, col [3]float32
		copy(pos[:], p.Positions[i:i+3])
		copy(col[:], p.Colors[i:i+3])
		if prev, ok := seen[pos]; ok {
			assert.Equal(t, prev, col, "corner %v", pos)
			continue
		}
		seen[pos] = col
	}
	assert.Len(t, seen, 7)
}

func TestPolyhedronReturnsCopy(t *testing.T) {
	a := geometry.Polyhedron()
	a.Positions[0] = 42
	b := geometry.Polyhedron()
	assert.Equal(t, float32(-1.5), b.Positions[0])
}

func TestValidateRejectsBadBuffers(t *testing.T) {
	nan := float32(math.NaN())
	cases := []struct {
		name  string
		shape geometry.Shape
	}{
		{"empty", geometry.Shape{Name: "empty"}},
		{"partial triangle", geometry.Shape{Name: "partial", Positions: []float32{0, 0, 0, 1, 1, 1}}},
		{"colour mismatch", geometry.Shape{
			Name:      "mismatch",
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Colors:    []float32{1, 1, 1},
		}},
		{"nan", geometry.Shape{Name: "nan", Positions: []float32{0, 0, 0, 1, 0, 0, 0, nan, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.shape.Validate())
		})
	}
}
