package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"boidflock/internal/render"
	"boidflock/internal/sims/flock"
)

func TestPointerDrivesPerturbation(t *testing.T) {
	cam := render.NewCamera(400, 400, 100)
	pert := flock.NewPerturbation()
	tr := flock.NewTracker(pert, flock.ThresholdsFrom(flock.DefaultParams()))

	tr.Observe(poseFromPointer(Pointer{X: 200, Y: 200, Inside: true, Attract: true}, cam))
	if !pert.AttractionActive() || !pert.Visible() {
		t.Fatal("expected held primary button to attract")
	}
	if got := pert.Attractor(); got.Sub(mgl64.Vec3{}).Len() > 1e-9 {
		t.Fatalf("expected view center to map to the origin, got %v", got)
	}

	tr.Observe(poseFromPointer(Pointer{X: 200, Y: 200, Inside: true, Scatter: true}, cam))
	if pert.AttractionActive() || !pert.ExplosionPending() {
		t.Fatal("expected secondary button to release attraction and arm an explosion")
	}

	tr.Observe(poseFromPointer(Pointer{Inside: false, Attract: true}, cam))
	if pert.Visible() || pert.AttractionActive() {
		t.Fatal("expected leaving the view to behave like a lost hand")
	}
}
