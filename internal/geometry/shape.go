package geometry

import (
	"errors"
	"fmt"
	"math"
)

const (
	// ComponentsPerVertex is the number of floats per position or colour (xyz / rgb).
	ComponentsPerVertex = 3
	// VerticesPerTriangle is the number of vertices in one triangle-list primitive.
	VerticesPerTriangle = 3

	floatsPerTriangle = ComponentsPerVertex * VerticesPerTriangle
)

// Shape is a flat triangle list with optional per-vertex colours.
type Shape struct {
	Name      string
	Positions []float32
	Colors    []float32
}

// Validate reports whether the buffers can be uploaded and drawn as a triangle list.
func (s Shape) Validate() error {
	if len(s.Positions) == 0 {
		return fmt.Errorf("shape %q: no positions", s.Name)
	}
	if len(s.Positions)%floatsPerTriangle != 0 {
		return fmt.Errorf("shape %q: %d position floats is not a whole number of triangles", s.Name, len(s.Positions))
	}
	if len(s.Colors) != 0 && len(s.Colors) != len(s.Positions) {
		return fmt.Errorf("shape %q: %d colour floats for %d position floats", s.Name, len(s.Colors), len(s.Positions))
	}
	if err := checkFinite(s.Positions); err != nil {
		return fmt.Errorf("shape %q positions: %w", s.Name, err)
	}
	if err := checkFinite(s.Colors); err != nil {
		return fmt.Errorf("shape %q colors: %w", s.Name, err)
	}
	return nil
}

// VertexCount returns the number of vertices passed to DrawArrays.
func (s Shape) VertexCount() int32 {
	return int32(len(s.Positions) / ComponentsPerVertex)
}

// TriangleCount returns the number of triangles in the list.
func (s Shape) TriangleCount() int {
	return len(s.Positions) / floatsPerTriangle
}

// HasColors reports whether the shape carries a per-vertex colour buffer.
func (s Shape) HasColors() bool {
	return len(s.Colors) > 0
}

var errNotFinite = errors.New("component is NaN or Inf")

func checkFinite(v []float32) error {
	for i, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return fmt.Errorf("index %d: %w", i, errNotFinite)
		}
	}
	return nil
}
