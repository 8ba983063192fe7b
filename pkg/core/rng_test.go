package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.Range(-3, 5), b.Range(-3, 5); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestInBoxStaysInside(t *testing.T) {
	r := NewRNG(1)
	half := mgl64.Vec3{10, 20, 5}
	for i := 0; i < 500; i++ {
		p := r.InBox(half)
		for axis := 0; axis < 3; axis++ {
			if p[axis] < -half[axis] || p[axis] >= half[axis] {
				t.Fatalf("point %v escapes box %v", p, half)
			}
		}
	}
}

func TestDirectionIsUnit(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 100; i++ {
		if l := r.Direction().Len(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("expected unit vector, got length %f", l)
		}
	}
}

func TestRangeDegenerate(t *testing.T) {
	r := NewRNG(9)
	if got := r.Range(2, 2); got != 2 {
		t.Fatalf("expected collapsed range to return lo, got %f", got)
	}
}
