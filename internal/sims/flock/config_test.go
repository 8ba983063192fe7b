package flock

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params rejected: %v", err)
	}
}

func TestValidateRejectsDegenerate(t *testing.T) {
	p := DefaultParams()
	p.Count = 0
	p.ProtectedRange = p.VisualRange + 1
	p.MinSpeed = p.MaxSpeed + 1
	err := p.Validate()
	if !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
	for _, want := range []string{"count", "protected_range", "min_speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %s, got %v", want, err)
		}
	}
}

func TestSanitizeProducesValidParams(t *testing.T) {
	p := Params{
		Count:          -4,
		VisualRange:    -1,
		ProtectedRange: 900,
		MinSpeed:       5,
		MaxSpeed:       2,
		CohesionForce:  -1,
		Bounds:         [3]float64{0, 10, -3},
	}
	s := p.Sanitize()
	if err := s.Validate(); err != nil {
		t.Fatalf("sanitized params still invalid: %v", err)
	}
	if s.MinSpeed != 2 || s.ProtectedRange != s.VisualRange {
		t.Fatalf("unexpected sanitized values %+v", s)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"count":           "42",
		"seed":            "9",
		"visual_range":    "75",
		"cohesion_force":  "0.4",
		"protected_range": "bogus",
		"bounds":          "120",
		"workers":         "3",
	})
	if cfg.Params.Count != 42 || cfg.Seed != 9 || cfg.Workers != 3 {
		t.Fatalf("unexpected top-level values %+v", cfg)
	}
	if cfg.Params.VisualRange != 75 || cfg.Params.CohesionForce != 0.4 {
		t.Fatalf("float overrides not applied: %+v", cfg.Params)
	}
	if cfg.Params.ProtectedRange != DefaultParams().ProtectedRange {
		t.Fatal("expected unparsable value to be ignored")
	}
	if cfg.Params.Bounds != [3]float64{120, 120, 120} {
		t.Fatalf("unexpected bounds %v", cfg.Params.Bounds)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("expected nil map to yield defaults")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flock.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
seed = 5
workers = 2

[params]
count = 64
visual_range = 80.0
bounds = [100.0, 50.0, 100.0]
explosion_radius = 150.0
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 5 || cfg.Workers != 2 || cfg.Params.Count != 64 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Params.VisualRange != 80 || cfg.Params.ExplosionRadius != 150 {
		t.Fatalf("unexpected params %+v", cfg.Params)
	}
	if cfg.Params.Bounds != [3]float64{100, 50, 100} {
		t.Fatalf("unexpected bounds %v", cfg.Params.Bounds)
	}
	if cfg.Params.MaxSpeed != DefaultParams().MaxSpeed {
		t.Fatal("expected unspecified params to keep defaults")
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[params]\nviusal_range = 3.0\n")
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "viusal_range") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadFileRejectsInvalidParams(t *testing.T) {
	path := writeConfig(t, "[params]\nmin_speed = 9.0\n")
	if _, err := LoadFile(path); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}
