package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	maxPitch    = 1.4
	nearPlane   = 1.0
	minDistance = 50.0
	maxDistance = 3000.0
)

// Camera is a perspective orbit camera looking at the origin.
type Camera struct {
	Yaw, Pitch float64
	Distance   float64
	Focal      float64 // pixels per world unit at unit depth
	W, H       float64 // viewport size
}

// NewCamera returns a camera framing a box of the given half extent.
func NewCamera(w, h int, halfExtent float64) Camera {
	return Camera{
		Pitch:    0.2,
		Distance: halfExtent * 3,
		Focal:    float64(min(w, h)) * 1.1,
		W:        float64(w),
		H:        float64(h),
	}
}

func (c Camera) rotation() mgl64.Mat3 {
	return mgl64.Rotate3DX(c.Pitch).Mul3(mgl64.Rotate3DY(c.Yaw))
}

// Orbit turns the camera around the origin.
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = max(-maxPitch, min(maxPitch, c.Pitch+dpitch))
}

// Zoom scales the orbit distance.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = max(minDistance, min(maxDistance, c.Distance*factor))
}

// Project maps a world point to screen coordinates. ok is false for points
// behind the near plane.
func (c Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	q := c.rotation().Mul3x1(p)
	depth = c.Distance - q.Z()
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	s := c.Focal / depth
	return c.W/2 + q.X()*s, c.H/2 - q.Y()*s, depth, true
}

// Unproject maps a screen point onto the plane through the origin facing
// the camera.
func (c Camera) Unproject(x, y float64) mgl64.Vec3 {
	s := c.Focal / c.Distance
	q := mgl64.Vec3{(x - c.W/2) / s, -(y - c.H/2) / s, 0}
	return c.rotation().Transpose().Mul3x1(q)
}
