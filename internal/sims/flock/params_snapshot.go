package flock

import (
	"boidflock/internal/core"
)

// Parameters reports the current tunables grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.Params()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("count", "Boids", p.Count),
				core.IntParam("seed", "Seed", int(w.seed)),
				core.IntParam("workers", "Workers", len(w.bufs)),
			},
		},
		{
			Name: "Forces",
			Params: []core.Parameter{
				core.FloatParam("attractor_force", "Attractor force", p.AttractorForce),
				core.FloatParam("cohesion_force", "Cohesion", p.CohesionForce),
				core.FloatParam("separation_force", "Separation", p.SeparationForce),
				core.FloatParam("alignment_force", "Alignment", p.AlignmentForce),
				core.FloatParam("max_force", "Max force", p.MaxForce),
			},
		},
		{
			Name: "Ranges",
			Params: []core.Parameter{
				core.FloatParam("visual_range", "Visual range", p.VisualRange),
				core.FloatParam("protected_range", "Protected range", p.ProtectedRange),
				core.FloatParam("explosion_radius", "Explosion radius", p.ExplosionRadius),
			},
		},
		{
			Name: "Speed",
			Params: []core.Parameter{
				core.FloatParam("min_speed", "Min speed", p.MinSpeed),
				core.FloatParam("max_speed", "Max speed", p.MaxSpeed),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.BoolParam("paused", "Paused", w.paused),
				core.BoolParam("attracting", "Attracting", w.pert.AttractionActive()),
				core.IntParam("tick", "Tick", w.stats.Tick),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "count", Label: "Boids", Type: core.ParamTypeInt, Step: 50, Min: 1, Max: 5000, HasMin: true, HasMax: true},
		floatControl("attractor_force", "Attractor", 0.05, 0, 2),
		floatControl("cohesion_force", "Cohesion", 0.05, 0, 2),
		floatControl("separation_force", "Separation", 0.1, 0, 5),
		floatControl("alignment_force", "Alignment", 0.05, 0, 2),
		floatControl("visual_range", "Visual range", 5, 5, 150),
		floatControl("protected_range", "Protected", 1, 0, 50),
		floatControl("max_speed", "Max speed", 0.25, 0.25, 10),
		floatControl("min_speed", "Min speed", 0.1, 0, 5),
	}
}

func floatControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    lo,
		Max:    hi,
		HasMin: true,
		HasMax: true,
	}
}

// SetIntParameter updates an integer parameter between ticks. Changing the
// population size recreates every boid.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "count":
		if value <= 0 {
			return false
		}
		w.mu.Lock()
		changed := w.cfg.Params.Count != value
		w.cfg.Params.Count = value
		w.mu.Unlock()
		if changed {
			w.populate()
		}
		return true
	}
	return false
}

// SetFloatParameter updates a floating point parameter between ticks. The
// result is sanitized, so for example a protected range above the visual
// range is clamped down to it. A new visual range rebuilds the index with the
// matching cell size on the next tick.
func (w *World) SetFloatParameter(key string, value float64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	dst, ok := w.cfg.Params.floatFields()[key]
	if !ok {
		return false
	}
	*dst = value
	w.cfg.Params = w.cfg.Params.Sanitize()
	return true
}
