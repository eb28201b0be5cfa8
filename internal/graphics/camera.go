package graphics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection describes a perspective frustum
type Projection struct {
	FOV    float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultProjection is a 45 degree, 4:3 frustum covering 0.1 to 100 units
func DefaultProjection() Projection {
	return Projection{FOV: 45, Aspect: 4.0 / 3.0, Near: 0.1, Far: 100}
}

// Validate rejects frustums mgl32.Perspective cannot produce a usable matrix for
func (p Projection) Validate() error {
	if p.FOV <= 0 || p.FOV >= 180 {
		return fmt.Errorf("projection: fov %v out of range (0, 180)", p.FOV)
	}
	if p.Aspect <= 0 {
		return fmt.Errorf("projection: aspect %v must be positive", p.Aspect)
	}
	if p.Near <= 0 || p.Far <= p.Near {
		return fmt.Errorf("projection: need 0 < near < far, got near=%v far=%v", p.Near, p.Far)
	}
	return nil
}

func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
}

// LookAt returns a view matrix for a camera at eye looking at the origin, head up (+Y)
func LookAt(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// MVP combines the three transforms; the model is applied first
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
