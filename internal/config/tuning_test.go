package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"charon/internal/world"
)

func TestLoadTuningOverridesDefaults(t *testing.T) {
	base := world.DefaultConfig()
	cfg, err := LoadTuning(filepath.Join("testdata", "tuning.yaml"), base)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Layout != "delta" || cfg.Seed != 7 || cfg.Tiles != 20 {
		t.Fatalf("world section not applied: %+v", cfg)
	}
	if cfg.Width != base.Width || cfg.LevelHeight != base.LevelHeight {
		t.Fatal("unspecified world fields must keep defaults")
	}
	p := cfg.Spirits
	if p.MaxOccupants != 2 || p.Speed != 150 {
		t.Fatalf("spirits section not applied: %+v", p)
	}
	if p.SpawnInterval != 800*time.Millisecond || p.MinSpawnInterval != 400*time.Millisecond {
		t.Fatalf("intervals = %v / %v", p.SpawnInterval, p.MinSpawnInterval)
	}
	if p.SpawnIntervalStep != base.Spirits.SpawnIntervalStep || p.SeparationRadius != base.Spirits.SeparationRadius {
		t.Fatal("unspecified spirits fields must keep defaults")
	}
	if len(cfg.Level.EndScores) != 3 || cfg.Level.EndScores[2] != 150 {
		t.Fatalf("end scores = %v", cfg.Level.EndScores)
	}
	if len(cfg.Level.StartScores) != len(base.Level.StartScores) {
		t.Fatal("start scores must keep defaults")
	}
}

func TestLoadTuningRejectsInvalid(t *testing.T) {
	_, err := LoadTuning(filepath.Join("testdata", "bad_tuning.yaml"), world.DefaultConfig())
	if err == nil || !strings.Contains(err.Error(), "minSpawnInterval") {
		t.Fatalf("expected interval validation error, got %v", err)
	}
	if _, err := LoadTuning(filepath.Join("testdata", "missing.yaml"), world.DefaultConfig()); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*world.Config)
	}{
		{"layout", func(c *world.Config) { c.Layout = "styx" }},
		{"size", func(c *world.Config) { c.Width = 0 }},
		{"occupants", func(c *world.Config) { c.Spirits.MaxOccupants = 0 }},
		{"smoothing", func(c *world.Config) { c.Spirits.Smoothing = 2 }},
		{"scores", func(c *world.Config) { c.Level.StartScores = []int{0, 10, 5} }},
	}
	if err := Validate(world.DefaultConfig()); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	for _, tc := range cases {
		cfg := world.DefaultConfig()
		tc.mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestParseTuningSyntaxError(t *testing.T) {
	if _, err := ParseTuning([]byte("world: [unclosed"), world.DefaultConfig()); err == nil {
		t.Fatal("expected parse error")
	}
}
