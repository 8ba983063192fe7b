package flock

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Boid is a single agent. Acceleration only carries forces accumulated during
// the current tick and is zeroed by Integrate.
type Boid struct {
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
}

// ApplyForce adds f to the pending acceleration.
func (b *Boid) ApplyForce(f mgl64.Vec3) {
	b.Acceleration = b.Acceleration.Add(f)
}

// neighborhood is the per-agent result of the narrow phase.
type neighborhood struct {
	cohesion   mgl64.Vec3
	alignment  mgl64.Vec3
	separation mgl64.Vec3
	flockmates int
	crowding   int
}

// Steer accumulates cohesion, alignment, separation, attraction and explosion
// forces for the boid at slot self. candidates are slot indices from the
// broad phase and may include self or agents beyond range.
func (b *Boid) Steer(self int, boids []Boid, candidates []int, s Snapshot, p *Params) int {
	var n neighborhood
	for _, i := range candidates {
		if i == self {
			continue
		}
		other := &boids[i]
		offset := b.Position.Sub(other.Position)
		d := offset.Len()
		if d <= 0 {
			continue
		}
		if d < p.VisualRange {
			n.cohesion = n.cohesion.Add(other.Position)
			n.alignment = n.alignment.Add(other.Velocity)
			n.flockmates++
		}
		if d < p.ProtectedRange {
			n.separation = n.separation.Add(offset.Mul(1 / (d * d)))
			n.crowding++
		}
	}

	if n.flockmates > 0 {
		center := n.cohesion.Mul(1 / float64(n.flockmates))
		b.seek(center.Sub(b.Position), p.CohesionForce, p)
		b.seek(n.alignment.Mul(1/float64(n.flockmates)), p.AlignmentForce, p)
	}
	if n.crowding > 0 {
		b.seek(n.separation.Mul(1/float64(n.crowding)), p.SeparationForce, p)
	}

	if s.AttractionActive {
		toward := s.Attractor.Sub(b.Position)
		if toward.Len() < p.VisualRange*p.AttractorReach {
			b.seek(toward, p.AttractorForce, p)
		}
	}

	if s.ExplosionActive {
		b.ApplyForce(explosionForce(b.Position, s.Epicenter, p))
	}
	return n.flockmates
}

// seek steers toward desired (rescaled to MaxSpeed) with a MaxForce-clamped
// and weighted correction.
func (b *Boid) seek(desired mgl64.Vec3, weight float64, p *Params) {
	desired = setLength(desired, p.MaxSpeed)
	steer := clampLength(desired.Sub(b.Velocity), 0, p.MaxForce)
	b.ApplyForce(steer.Mul(weight))
}

// explosionForce is the unclamped radial push with linear falloff.
func explosionForce(pos, epicenter mgl64.Vec3, p *Params) mgl64.Vec3 {
	away := pos.Sub(epicenter)
	d := away.Len()
	if d <= 0 || d >= p.ExplosionRadius {
		return mgl64.Vec3{}
	}
	strength := p.MaxForce * p.ExplosionStrength * (1 - d/p.ExplosionRadius)
	return away.Mul(strength / d)
}

// Integrate applies the accumulated force, enforces the speed band, moves the
// boid and wraps it back into the box.
func (b *Boid) Integrate(p *Params) {
	v := b.Velocity.Add(b.Acceleration)
	if v.Len() == 0 {
		v = mgl64.Vec3{1, 0, 0}
	}
	b.Velocity = clampLength(v, p.MinSpeed, p.MaxSpeed)
	b.Position = b.Position.Add(b.Velocity)
	b.Acceleration = mgl64.Vec3{}
	b.Position = Wrap(b.Position, p.HalfExtents())
}

// Wrap maps p onto the torus [-half, half] per axis, keeping any overshoot.
func Wrap(p, half mgl64.Vec3) mgl64.Vec3 {
	for axis := 0; axis < 3; axis++ {
		h := half[axis]
		if h <= 0 {
			continue
		}
		span := 2 * h
		switch v := p[axis]; {
		case v > h:
			p[axis] = -h + math.Mod(v-h, span)
		case v < -h:
			p[axis] = h - math.Mod(-h-v, span)
		}
	}
	return p
}

// Heading returns the unit direction of travel.
func (b *Boid) Heading() mgl64.Vec3 {
	return setLength(b.Velocity, 1)
}

// setLength rescales v to length l. The zero vector stays zero.
func setLength(v mgl64.Vec3, l float64) mgl64.Vec3 {
	n := v.Len()
	if n == 0 {
		return v
	}
	return v.Mul(l / n)
}

// clampLength rescales v so its length lies in [lo, hi]. The zero vector stays zero.
func clampLength(v mgl64.Vec3, lo, hi float64) mgl64.Vec3 {
	n := v.Len()
	if n == 0 {
		return v
	}
	return v.Mul(clamp(n, lo, hi) / n)
}
