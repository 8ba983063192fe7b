package flock

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidParams reports a configuration the simulation cannot run with.
var ErrInvalidParams = errors.New("flock: invalid parameters")

// Params holds the tunable behavior weights, ranges and limits.
type Params struct {
	Count int `toml:"count"`

	CohesionForce   float64 `toml:"cohesion_force"`
	SeparationForce float64 `toml:"separation_force"`
	AlignmentForce  float64 `toml:"alignment_force"`
	AttractorForce  float64 `toml:"attractor_force"`

	VisualRange    float64 `toml:"visual_range"`
	ProtectedRange float64 `toml:"protected_range"`
	AttractorReach float64 `toml:"attractor_reach"` // multiple of VisualRange

	MinSpeed float64 `toml:"min_speed"`
	MaxSpeed float64 `toml:"max_speed"`
	MaxForce float64 `toml:"max_force"`

	ExplosionRadius   float64 `toml:"explosion_radius"`
	ExplosionStrength float64 `toml:"explosion_strength"` // multiple of MaxForce

	Bounds [3]float64 `toml:"bounds"` // half extents

	PinchThreshold     float64 `toml:"pinch_threshold"`
	PalmOpenThreshold  float64 `toml:"palm_open_threshold"`
	AttractorSmoothing float64 `toml:"attractor_smoothing"`
}

// Config controls the flock simulation.
type Config struct {
	Seed    int64 `toml:"seed"`
	Workers int   `toml:"workers"` // goroutines used by the steer phase; <= 1 runs inline

	Params Params `toml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:    1337,
		Workers: 1,
		Params:  DefaultParams(),
	}
}

// DefaultParams returns the standard behavior parameters.
func DefaultParams() Params {
	return Params{
		Count:              500,
		CohesionForce:      0.2,
		SeparationForce:    1.5,
		AlignmentForce:     0.5,
		AttractorForce:     0.8,
		VisualRange:        50,
		ProtectedRange:     10,
		AttractorReach:     2,
		MinSpeed:           0.5,
		MaxSpeed:           2,
		MaxForce:           0.1,
		ExplosionRadius:    200,
		ExplosionStrength:  1000,
		Bounds:             [3]float64{200, 200, 200},
		PinchThreshold:     0.05,
		PalmOpenThreshold:  0.25,
		AttractorSmoothing: 0.5,
	}
}

// HalfExtents returns the world bounds as a vector.
func (p Params) HalfExtents() mgl64.Vec3 {
	return mgl64.Vec3{p.Bounds[0], p.Bounds[1], p.Bounds[2]}
}

// Validate reports every degenerate setting at once.
func (p Params) Validate() error {
	var errs []error
	if p.Count <= 0 {
		errs = append(errs, fmt.Errorf("count must be positive, got %d", p.Count))
	}
	if p.VisualRange <= 0 {
		errs = append(errs, fmt.Errorf("visual_range must be positive, got %g", p.VisualRange))
	}
	if p.ProtectedRange < 0 || p.ProtectedRange > p.VisualRange {
		errs = append(errs, fmt.Errorf("protected_range %g must lie in [0, visual_range %g]", p.ProtectedRange, p.VisualRange))
	}
	if p.MinSpeed < 0 || p.MinSpeed > p.MaxSpeed {
		errs = append(errs, fmt.Errorf("min_speed %g must lie in [0, max_speed %g]", p.MinSpeed, p.MaxSpeed))
	}
	if p.MaxForce < 0 {
		errs = append(errs, fmt.Errorf("max_force must not be negative, got %g", p.MaxForce))
	}
	for name, w := range map[string]float64{
		"cohesion_force":   p.CohesionForce,
		"separation_force": p.SeparationForce,
		"alignment_force":  p.AlignmentForce,
		"attractor_force":  p.AttractorForce,
	} {
		if w < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, w))
		}
	}
	for axis, b := range p.Bounds {
		if b <= 0 {
			errs = append(errs, fmt.Errorf("bounds[%d] must be positive, got %g", axis, b))
		}
	}
	if p.ExplosionRadius < 0 {
		errs = append(errs, fmt.Errorf("explosion_radius must not be negative, got %g", p.ExplosionRadius))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
}

// Sanitize clamps degenerate settings into a runnable configuration.
func (p Params) Sanitize() Params {
	def := DefaultParams()
	if p.Count <= 0 {
		p.Count = 1
	}
	if p.VisualRange <= 0 {
		p.VisualRange = def.VisualRange
	}
	p.ProtectedRange = clamp(p.ProtectedRange, 0, p.VisualRange)
	if p.MaxSpeed < 0 {
		p.MaxSpeed = 0
	}
	p.MinSpeed = clamp(p.MinSpeed, 0, p.MaxSpeed)
	p.MaxForce = max(p.MaxForce, 0)
	p.CohesionForce = max(p.CohesionForce, 0)
	p.SeparationForce = max(p.SeparationForce, 0)
	p.AlignmentForce = max(p.AlignmentForce, 0)
	p.AttractorForce = max(p.AttractorForce, 0)
	p.ExplosionRadius = max(p.ExplosionRadius, 0)
	for axis := range p.Bounds {
		if p.Bounds[axis] <= 0 {
			p.Bounds[axis] = def.Bounds[axis]
		}
	}
	p.AttractorSmoothing = clamp(p.AttractorSmoothing, 0, 1)
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LoadFile decodes a TOML file on top of the default configuration.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Params.Validate(); err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Bind attaches the top-level settings to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for population reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for steering")
	fs.IntVar(&c.Params.Count, "count", c.Params.Count, "number of boids")
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Count = parsed
		}
	}
	if v, ok := cfg["bounds"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Bounds = [3]float64{parsed, parsed, parsed}
		}
	}
	for key, dst := range c.Params.floatFields() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
	c.Params = c.Params.Sanitize()
	return c
}

// floatFields maps parameter keys to the fields they control.
func (p *Params) floatFields() map[string]*float64 {
	return map[string]*float64{
		"cohesion_force":      &p.CohesionForce,
		"separation_force":    &p.SeparationForce,
		"alignment_force":     &p.AlignmentForce,
		"attractor_force":     &p.AttractorForce,
		"visual_range":        &p.VisualRange,
		"protected_range":     &p.ProtectedRange,
		"attractor_reach":     &p.AttractorReach,
		"min_speed":           &p.MinSpeed,
		"max_speed":           &p.MaxSpeed,
		"max_force":           &p.MaxForce,
		"explosion_radius":    &p.ExplosionRadius,
		"explosion_strength":  &p.ExplosionStrength,
		"pinch_threshold":     &p.PinchThreshold,
		"palm_open_threshold": &p.PalmOpenThreshold,
		"attractor_smoothing": &p.AttractorSmoothing,
	}
}
