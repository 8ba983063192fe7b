package flock

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func hand(pinch, spread float64) []Landmark {
	lm := make([]Landmark, landmarkCount)
	lm[landmarkThumbTip] = Landmark{X: 0.5, Y: 0.5}
	lm[landmarkIndexTip] = Landmark{X: 0.5 + pinch, Y: 0.5}
	lm[landmarkPinkyTip] = Landmark{X: 0.5, Y: 0.5 + spread}
	return lm
}

func TestPoseFromLandmarks(t *testing.T) {
	pose := PoseFromLandmarks(hand(0.02, 0.3), mgl64.Vec3{1, 2, 3})
	if !pose.Detected || !approx(pose.PinchDistance, 0.02) || !approx(pose.PalmSpread, 0.3) {
		t.Fatalf("unexpected pose %+v", pose)
	}
	if PoseFromLandmarks(make([]Landmark, 5), mgl64.Vec3{}).Detected {
		t.Fatal("expected partial hand to be undetected")
	}
}

func TestTrackerPinchDrivesAttraction(t *testing.T) {
	pert := NewPerturbation()
	tr := NewTracker(pert, ThresholdsFrom(DefaultParams()))

	tr.Observe(PoseFromLandmarks(hand(0.01, 0.1), mgl64.Vec3{10, 0, 0}))
	if !pert.AttractionActive() || !pert.Visible() {
		t.Fatal("expected pinch to activate a visible attractor")
	}
	if pert.Attractor() != (mgl64.Vec3{10, 0, 0}) {
		t.Fatalf("expected first pose to snap the attractor, got %v", pert.Attractor())
	}

	tr.Observe(PoseFromLandmarks(hand(0.2, 0.1), mgl64.Vec3{20, 0, 0}))
	if pert.AttractionActive() {
		t.Fatal("expected released pinch to stop attraction")
	}
	if got := pert.Attractor(); !approx(got.X(), 15) {
		t.Fatalf("expected smoothed attractor at x=15, got %v", got)
	}
}

func TestTrackerOpenPalmRisingEdge(t *testing.T) {
	pert := NewPerturbation()
	tr := NewTracker(pert, ThresholdsFrom(DefaultParams()))

	tr.Observe(PoseFromLandmarks(hand(0.2, 0.4), mgl64.Vec3{}))
	if !pert.ExplosionPending() {
		t.Fatal("expected open palm to arm an explosion")
	}
	pert.claim()

	tr.Observe(PoseFromLandmarks(hand(0.2, 0.4), mgl64.Vec3{}))
	if pert.ExplosionPending() {
		t.Fatal("held open palm must not re-trigger")
	}

	tr.Observe(PoseFromLandmarks(hand(0.2, 0.1), mgl64.Vec3{}))
	tr.Observe(PoseFromLandmarks(hand(0.2, 0.4), mgl64.Vec3{}))
	if !pert.ExplosionPending() {
		t.Fatal("expected reopened palm to re-trigger")
	}
}

func TestTrackerHandLost(t *testing.T) {
	pert := NewPerturbation()
	tr := NewTracker(pert, ThresholdsFrom(DefaultParams()))
	tr.Observe(PoseFromLandmarks(hand(0.01, 0.4), mgl64.Vec3{5, 5, 5}))
	pert.claim()

	tr.Observe(Pose{})
	if pert.AttractionActive() || pert.Visible() {
		t.Fatal("expected lost hand to drop attraction and visibility")
	}

	tr.Observe(PoseFromLandmarks(hand(0.01, 0.4), mgl64.Vec3{-5, 0, 0}))
	if pert.Attractor() != (mgl64.Vec3{-5, 0, 0}) {
		t.Fatalf("expected new session to snap attractor, got %v", pert.Attractor())
	}
	if !pert.ExplosionPending() {
		t.Fatal("expected open palm on a fresh session to trigger")
	}
}

func TestPerturbationClaim(t *testing.T) {
	pert := NewPerturbation()
	pert.SetAttractor(mgl64.Vec3{7, 0, 0})
	pert.SetAttraction(true)
	pert.TriggerExplosion()

	snap := pert.claim()
	if !snap.ExplosionActive || snap.Epicenter != (mgl64.Vec3{7, 0, 0}) || !snap.AttractionActive {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if pert.claim().ExplosionActive {
		t.Fatal("explosion claimed twice")
	}

	pert.TriggerExplosion()
	pert.Release()
	if pert.ExplosionPending() || pert.AttractionActive() {
		t.Fatal("expected release to clear every signal")
	}
}
