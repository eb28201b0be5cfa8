package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Phase maps the clock accumulator to an orbit angle in radians.
type Phase interface {
	Angle(t float32) float32
}

// LinearPhase turns at a constant Rate radians per reference frame.
type LinearPhase struct {
	Rate float32
}

func (p LinearPhase) Angle(t float32) float32 {
	return p.Rate * t
}

// WobblePhase drifts steadily while swinging back and forth:
// |sin(Step*t/2)| * Amplitude + Drift*t.
type WobblePhase struct {
	Step      float32
	Drift     float32
	Amplitude float32
}

func (p WobblePhase) Angle(t float32) float32 {
	swing := float32(math.Abs(math.Sin(float64(p.Step * t / 2))))
	return swing*p.Amplitude + p.Drift*t
}

// Path gives the camera position for a clock value.
type Path interface {
	Eye(t float32) mgl32.Vec3
}

// Static keeps the camera at a fixed position.
type Static struct {
	Position mgl32.Vec3
}

func (s Static) Eye(float32) mgl32.Vec3 { return s.Position }

// Orbit circles the Y axis at a fixed height. RadiusX and RadiusZ scale the
// cosine and sine terms; equal magnitudes give a circle, a negative RadiusZ
// reverses the direction of travel.
type Orbit struct {
	RadiusX float32
	RadiusZ float32
	Height  float32
	Phase   Phase
}

// CircularOrbit returns an orbit of radius r.
func CircularOrbit(r, height float32, phase Phase) Orbit {
	return Orbit{RadiusX: r, RadiusZ: r, Height: height, Phase: phase}
}

func (o Orbit) Eye(t float32) mgl32.Vec3 {
	a := float64(o.Phase.Angle(t))
	return mgl32.Vec3{
		o.RadiusX * float32(math.Cos(a)),
		o.Height,
		o.RadiusZ * float32(math.Sin(a)),
	}
}

// Circular reports whether the orbit keeps a constant distance from the Y axis.
func (o Orbit) Circular() bool {
	return mgl32.Abs(o.RadiusX) == mgl32.Abs(o.RadiusZ)
}
