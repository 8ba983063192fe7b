package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStep() {
		t.Fatal("expected the first call to step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("expected no second step without elapsed time")
	}
}

func TestFixedStepDoesNotCatchUp(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 100; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("expected stalled pacer to drop missed ticks, got %d steps", steps)
	}
}

func TestFixedStepInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got %s", fs.Interval())
	}
}
