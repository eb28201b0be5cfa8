package graphics_test

import (
	"testing"

	"gltut/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func TestGoldenMVP(t *testing.T) {
	proj := graphics.DefaultProjection().Matrix()
	view := graphics.LookAt(mgl32.Vec3{4, 3, -3})
	mvp := graphics.MVP(proj, view, mgl32.Ident4())

	// row-major
	want := [4][4]float32{
		{-1.0863961, 0, -1.4485281, 0},
		{-0.9936821, 2.0701711, 0.7452616, 0},
		{-0.6873677, -0.5155258, 0.5155258, 5.6424253},
		{-0.6859943, -0.5144958, 0.5144958, 5.8309519},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.InDelta(t, want[r][c], mvp.At(r, c), tol, "row %d col %d", r, c)
		}
	}
}

func TestProjectionMatrix(t *testing.T) {
	m := graphics.DefaultProjection().Matrix()
	assert.InDelta(t, 1.8106602, m.At(0, 0), tol)
	assert.InDelta(t, 2.4142136, m.At(1, 1), tol)
	assert.InDelta(t, -1.002002, m.At(2, 2), tol)
	assert.InDelta(t, -0.2002002, m.At(2, 3), tol)
	assert.Equal(t, float32(-1), m.At(3, 2))
	assert.Equal(t, float32(0), m.At(3, 3))
}

func TestMVPIsProjectionViewModel(t *testing.T) {
	proj := graphics.Projection{FOV: 60, Aspect: 16.0 / 9.0, Near: 0.5, Far: 50}.Matrix()
	view := graphics.LookAt(mgl32.Vec3{-2, 1, 6})
	model := mgl32.Translate3D(1, -2, 0.5).Mul4(mgl32.HomogRotate3DY(0.7)).Mul4(mgl32.Scale3D(2, 2, 2))

	left := proj.Mul4(view).Mul4(model)
	right := proj.Mul4(view.Mul4(model))
	got := graphics.MVP(proj, view, model)

	assert.True(t, got.ApproxEqualThreshold(left, 1e-4))
	assert.True(t, got.ApproxEqualThreshold(right, 1e-4))
}

func TestLookAtPutsOriginInFront(t *testing.T) {
	eye := mgl32.Vec3{5, 1.5, 0}
	v := graphics.LookAt(eye)
	origin := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, origin.X(), tol)
	assert.InDelta(t, 0, origin.Y(), tol)
	assert.InDelta(t, -eye.Len(), origin.Z(), tol)
}

func TestProjectionValidate(t *testing.T) {
	require.NoError(t, graphics.DefaultProjection().Validate())

	bad := []graphics.Projection{
		{FOV: 0, Aspect: 1, Near: 0.1, Far: 10},
		{FOV: 45, Aspect: 0, Near: 0.1, Far: 10},
		{FOV: 45, Aspect: 1, Near: 0, Far: 10},
		{FOV: 45, Aspect: 1, Near: 10, Far: 1},
	}
	for _, p := range bad {
		assert.Error(t, p.Validate(), "%+v", p)
	}
}
