package flock

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"boidflock/internal/core"
	"boidflock/internal/spatial"
	pcore "boidflock/pkg/core"
)

// World owns the population, the neighbor index and the tick state machine.
// Step, StepOnce, Reset and the parameter setters must be called from one
// goroutine; the Perturbation may be written from any goroutine.
type World struct {
	cfg Config
	mu  sync.Mutex // guards cfg.Params against concurrent HUD edits

	boids     []Boid
	positions []mgl64.Vec3
	grid      *spatial.HashGrid
	pert      *Perturbation
	paused    bool
	seed      int64

	bufs   [][]int
	counts []tickCounts
	stats  Stats
}

type tickCounts struct {
	candidates int
	flockmates int
}

// New returns a flock using the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a flock configured from the provided options. The
// parameters are sanitized so the tick never sees a degenerate setup.
func NewWithConfig(cfg Config) *World {
	cfg.Params = cfg.Params.Sanitize()
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	w := &World{
		cfg:  cfg,
		grid: spatial.NewHashGrid(cfg.Params.HalfExtents(), cfg.Params.VisualRange),
		pert: NewPerturbation(),
		seed: cfg.Seed,
	}
	w.bufs = make([][]int, cfg.Workers)
	w.counts = make([]tickCounts, cfg.Workers)
	w.populate()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "flock" }

// Boids exposes the ordered population. Callers must treat it as read-only.
func (w *World) Boids() []Boid { return w.boids }

// Perturbation exposes the external input state.
func (w *World) Perturbation() *Perturbation { return w.pert }

// Attractor reports the attractor position and whether it should be drawn.
func (w *World) Attractor() (mgl64.Vec3, bool) {
	return w.pert.Attractor(), w.pert.Visible()
}

// Params returns a copy of the current parameters.
func (w *World) Params() Params {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg.Params
}

// Paused reports whether ticks are suspended.
func (w *World) Paused() bool { return w.paused }

// SetPaused suspends or resumes ticking. Resuming continues from the exact
// suspended state.
func (w *World) SetPaused(paused bool) { w.paused = paused }

// TogglePause flips between running and paused.
func (w *World) TogglePause() { w.paused = !w.paused }

// Reset recreates the whole population. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.populate()
}

func (w *World) populate() {
	p := w.Params()
	rng := pcore.NewRNG(w.seed)
	half := p.HalfExtents()
	w.boids = make([]Boid, p.Count)
	w.positions = make([]mgl64.Vec3, p.Count)
	for i := range w.boids {
		w.boids[i] = Boid{
			Position: rng.InBox(half),
			Velocity: rng.Direction().Mul(rng.Range(p.MinSpeed, p.MaxSpeed)),
		}
	}
	w.grid.Clear()
	w.stats = Stats{}
}

// Step advances one tick unless the world is paused.
func (w *World) Step() {
	if w.paused {
		return
	}
	w.tick()
}

// StepOnce advances exactly one tick even while paused.
func (w *World) StepOnce() { w.tick() }

func (w *World) tick() {
	p := w.Params()
	if len(w.boids) == 0 {
		return
	}
	if half := p.HalfExtents(); w.grid.HalfExtents() != half {
		w.grid = spatial.NewHashGrid(half, p.VisualRange)
	} else if w.grid.CellSize() != p.VisualRange {
		w.grid.SetCellSize(p.VisualRange)
	}

	// phase 1: index the pre-integration positions
	for i := range w.boids {
		w.positions[i] = w.boids[i].Position
	}
	w.grid.Rebuild(w.positions)

	// phase 2: every agent steers against the same frozen state
	snap := w.pert.claim()
	w.steerAll(&p, snap)

	// phase 3: the pending slot was emptied by claim, so the explosion every
	// agent just saw cannot fire again until it is re-triggered.
	if snap.ExplosionActive {
		w.stats.Explosions++
		w.stats.LastEpicenter = snap.Epicenter
		w.stats.LastExplosionTick = w.stats.Tick + 1
	}

	// phase 4
	for i := range w.boids {
		w.boids[i].Integrate(&p)
	}
	w.stats.Tick++
	w.collectStats()
}

func (w *World) steerAll(p *Params, snap Snapshot) {
	n := len(w.boids)
	workers := len(w.bufs)
	if workers > n {
		workers = n
	}
	for i := range w.counts {
		w.counts[i] = tickCounts{}
	}
	if workers <= 1 {
		w.steerRange(0, 0, n, p, snap)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for k := 0; k < workers; k++ {
		lo, hi := k*chunk, min((k+1)*chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			w.steerRange(k, lo, hi, p, snap)
			return nil
		})
	}
	_ = g.Wait()
}

// steerRange runs query and steer for slots [lo, hi) using worker k's scratch.
func (w *World) steerRange(k, lo, hi int, p *Params, snap Snapshot) {
	buf := w.bufs[k]
	for i := lo; i < hi; i++ {
		b := &w.boids[i]
		buf = w.grid.QueryBuf(b.Position, p.VisualRange, buf[:0])
		mates := b.Steer(i, w.boids, buf, snap, p)
		w.counts[k].candidates += len(buf)
		w.counts[k].flockmates += mates
	}
	w.bufs[k] = buf
}

func init() {
	core.Register("flock", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
