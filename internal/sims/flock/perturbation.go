package flock

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// Perturbation is the externally driven input shared between producers
// (gesture tracking, mouse, tests) and the simulation. Each field is updated
// atomically on its own; no cross-field consistency is promised.
type Perturbation struct {
	attractor  atomic.Pointer[mgl64.Vec3]
	attracting atomic.Bool
	visible    atomic.Bool
	pending    atomic.Bool
}

// Snapshot is the read-only view of a Perturbation used for a whole tick.
type Snapshot struct {
	Attractor        mgl64.Vec3
	AttractionActive bool
	ExplosionActive  bool
	Epicenter        mgl64.Vec3
}

// NewPerturbation returns a state with no attraction and no pending explosion.
func NewPerturbation() *Perturbation {
	p := &Perturbation{}
	p.attractor.Store(&mgl64.Vec3{})
	return p
}

// SetAttractor moves the attraction point.
func (p *Perturbation) SetAttractor(pos mgl64.Vec3) {
	p.attractor.Store(&pos)
}

// Attractor returns the current attraction point.
func (p *Perturbation) Attractor() mgl64.Vec3 {
	if v := p.attractor.Load(); v != nil {
		return *v
	}
	return mgl64.Vec3{}
}

// SetAttraction toggles steering toward the attractor.
func (p *Perturbation) SetAttraction(active bool) { p.attracting.Store(active) }

// AttractionActive reports whether agents currently steer toward the attractor.
func (p *Perturbation) AttractionActive() bool { return p.attracting.Load() }

// SetVisible records whether the attractor indicator should be shown.
func (p *Perturbation) SetVisible(visible bool) { p.visible.Store(visible) }

// Visible reports whether the attractor indicator should be shown.
func (p *Perturbation) Visible() bool { return p.visible.Load() }

// TriggerExplosion arms a single explosion for the next running tick.
// Repeated triggers before that tick collapse into one.
func (p *Perturbation) TriggerExplosion() { p.pending.Store(true) }

// ExplosionPending reports whether an explosion is armed but not yet consumed.
func (p *Perturbation) ExplosionPending() bool { return p.pending.Load() }

// Release clears every signal, as when the producer loses track of its input.
func (p *Perturbation) Release() {
	p.attracting.Store(false)
	p.visible.Store(false)
	p.pending.Store(false)
}

// claim snapshots the state and takes ownership of a pending explosion.
// The epicenter is the attractor position at claim time.
func (p *Perturbation) claim() Snapshot {
	s := Snapshot{
		Attractor:        p.Attractor(),
		AttractionActive: p.attracting.Load(),
	}
	if p.pending.Swap(false) {
		s.ExplosionActive = true
		s.Epicenter = s.Attractor
	}
	return s
}
