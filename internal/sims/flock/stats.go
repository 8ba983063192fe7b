package flock

import (
	"github.com/go-gl/mathgl/mgl64"

	"boidflock/internal/core"
)

// Stats summarizes the flock after the most recent tick.
type Stats struct {
	Tick int

	MeanSpeed      float64
	Polarization   float64 // |mean heading|, 1 when every boid flies the same way
	MeanCandidates float64 // broad-phase hits per boid
	MeanFlockmates float64 // narrow-phase neighbors within visual range

	Explosions        int
	LastExplosionTick int
	LastEpicenter     mgl64.Vec3
}

// Stats returns the summary of the last completed tick.
func (w *World) Stats() Stats { return w.stats }

func (w *World) collectStats() {
	n := len(w.boids)
	if n == 0 {
		return
	}
	var speed float64
	var heading mgl64.Vec3
	for i := range w.boids {
		speed += w.boids[i].Velocity.Len()
		heading = heading.Add(w.boids[i].Heading())
	}
	var candidates, mates int
	for _, c := range w.counts {
		candidates += c.candidates
		mates += c.flockmates
	}
	inv := 1 / float64(n)
	w.stats.MeanSpeed = speed * inv
	w.stats.Polarization = heading.Len() * inv
	w.stats.MeanCandidates = float64(candidates) * inv
	w.stats.MeanFlockmates = float64(mates) * inv
}

// ProjectDensity rasterizes a top-down (x, z) occupancy map into grid,
// saturating at 255 boids per cell.
func (w *World) ProjectDensity(grid *core.ByteGrid) {
	grid.Clear()
	half := w.Params().HalfExtents()
	cells := grid.Cells()
	for i := range w.boids {
		p := w.boids[i].Position
		x := int((p[0] + half[0]) / (2 * half[0]) * float64(grid.W))
		y := int((p[2] + half[2]) / (2 * half[2]) * float64(grid.H))
		x, y = grid.Clamp(x, y)
		if idx := grid.Index(x, y); cells[idx] < 255 {
			cells[idx]++
		}
	}
}
