package flock

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Landmark indices of the 21-point hand model.
const (
	landmarkThumbTip = 4
	landmarkIndexTip = 8
	landmarkPinkyTip = 20
	landmarkCount    = 21
)

// Landmark is a hand keypoint in normalized image coordinates.
type Landmark struct {
	X, Y float64
}

// Pose is one observation from a hand tracking producer. Target is the
// world-space point the hand maps to; the mapping belongs to the camera.
type Pose struct {
	Detected      bool
	Target        mgl64.Vec3
	PinchDistance float64 // thumb tip to index tip
	PalmSpread    float64 // thumb tip to pinky tip
}

// PoseFromLandmarks measures the gesture distances from a full hand. It
// reports an undetected pose when fewer than 21 landmarks are given.
func PoseFromLandmarks(lm []Landmark, target mgl64.Vec3) Pose {
	if len(lm) < landmarkCount {
		return Pose{}
	}
	return Pose{
		Detected:      true,
		Target:        target,
		PinchDistance: landmarkDist(lm[landmarkThumbTip], lm[landmarkIndexTip]),
		PalmSpread:    landmarkDist(lm[landmarkThumbTip], lm[landmarkPinkyTip]),
	}
}

func landmarkDist(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Thresholds tune gesture classification.
type Thresholds struct {
	Pinch     float64 // pinch when PinchDistance is below
	PalmOpen  float64 // open palm when PalmSpread is above
	Smoothing float64 // lerp factor toward the target, in [0, 1]
}

// ThresholdsFrom extracts the gesture settings from p.
func ThresholdsFrom(p Params) Thresholds {
	return Thresholds{Pinch: p.PinchThreshold, PalmOpen: p.PalmOpenThreshold, Smoothing: p.AttractorSmoothing}
}

// Tracker turns a stream of poses into Perturbation updates: pinch drives
// attraction and the rising edge of an open palm arms one explosion.
// Observe must not be called concurrently.
type Tracker struct {
	pert    *Perturbation
	th      Thresholds
	session bool
	open    bool
	pos     mgl64.Vec3
}

// NewTracker returns a tracker writing into pert.
func NewTracker(pert *Perturbation, th Thresholds) *Tracker {
	return &Tracker{pert: pert, th: th}
}

// SetThresholds replaces the gesture settings.
func (t *Tracker) SetThresholds(th Thresholds) { t.th = th }

// Observe applies one pose.
func (t *Tracker) Observe(pose Pose) {
	if !pose.Detected {
		t.pert.SetVisible(false)
		t.pert.SetAttraction(false)
		t.session = false
		t.open = false
		return
	}

	if !t.session {
		t.session = true
		t.pos = pose.Target
	} else {
		s := clamp(t.th.Smoothing, 0, 1)
		t.pos = t.pos.Add(pose.Target.Sub(t.pos).Mul(s))
	}
	t.pert.SetAttractor(t.pos)
	t.pert.SetVisible(true)
	t.pert.SetAttraction(pose.PinchDistance < t.th.Pinch)

	open := pose.PalmSpread > t.th.PalmOpen
	if open && !t.open {
		t.pert.TriggerExplosion()
	}
	t.open = open
}
