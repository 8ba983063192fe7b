package app

import (
	"boidflock/internal/render"
	"boidflock/internal/sims/flock"
)

// Pointer is the mouse state sampled once per frame.
type Pointer struct {
	X, Y    int
	Inside  bool // cursor over the simulation view
	Attract bool // primary button held
	Scatter bool // secondary button held
}

// poseFromPointer stands in for a hand tracker: the cursor is the hand,
// holding the primary button is a pinch and holding the secondary button
// is an open palm.
func poseFromPointer(p Pointer, cam render.Camera) flock.Pose {
	if !p.Inside {
		return flock.Pose{}
	}
	pose := flock.Pose{
		Detected:      true,
		Target:        cam.Unproject(float64(p.X), float64(p.Y)),
		PinchDistance: 1,
	}
	if p.Attract {
		pose.PinchDistance = 0
	}
	if p.Scatter {
		pose.PalmSpread = 1
	}
	return pose
}
