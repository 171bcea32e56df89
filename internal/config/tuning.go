// Package config loads tuning and keybind files over the built-in defaults.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"charon/internal/core"
	"charon/internal/level"
	"charon/internal/spirits"
	"charon/internal/world"
)

// tuningFile mirrors the YAML layout. Sections that are absent keep the
// values they were seeded with.
type tuningFile struct {
	World   worldSection   `yaml:"world"`
	Spirits spiritsSection `yaml:"spirits"`
	Level   level.Config   `yaml:"level"`
}

type worldSection struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	LevelWidth  int    `yaml:"levelWidth"`
	LevelHeight int    `yaml:"levelHeight"`
	Seed        int64  `yaml:"seed"`
	Layout      string `yaml:"layout"`
	Tiles       int    `yaml:"tiles"`
}

// spiritsSection carries intervals as float seconds.
type spiritsSection struct {
	spirits.Params `yaml:",inline"`

	SpawnInterval     float64 `yaml:"spawnInterval"`
	MinSpawnInterval  float64 `yaml:"minSpawnInterval"`
	SpawnIntervalStep float64 `yaml:"spawnIntervalStep"`
}

// LoadTuning reads a YAML tuning file and applies it over base.
func LoadTuning(path string, base world.Config) (world.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return world.Config{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data, base)
}

// ParseTuning applies YAML tuning data over base and validates the result.
func ParseTuning(data []byte, base world.Config) (world.Config, error) {
	raw := tuningFile{
		World: worldSection{
			Width:       base.Width,
			Height:      base.Height,
			LevelWidth:  base.LevelWidth,
			LevelHeight: base.LevelHeight,
			Seed:        base.Seed,
			Layout:      base.Layout,
			Tiles:       base.Tiles,
		},
		Spirits: spiritsSection{
			Params:            base.Spirits,
			SpawnInterval:     base.Spirits.SpawnInterval.Seconds(),
			MinSpawnInterval:  base.Spirits.MinSpawnInterval.Seconds(),
			SpawnIntervalStep: base.Spirits.SpawnIntervalStep.Seconds(),
		},
		Level: base.Level,
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return world.Config{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	cfg := base
	cfg.Width, cfg.Height = raw.World.Width, raw.World.Height
	cfg.LevelWidth, cfg.LevelHeight = raw.World.LevelWidth, raw.World.LevelHeight
	cfg.Seed = raw.World.Seed
	cfg.Layout = raw.World.Layout
	cfg.Tiles = raw.World.Tiles
	cfg.Spirits = raw.Spirits.Params
	cfg.Spirits.SpawnInterval = core.Seconds(raw.Spirits.SpawnInterval)
	cfg.Spirits.MinSpawnInterval = core.Seconds(raw.Spirits.MinSpawnInterval)
	cfg.Spirits.SpawnIntervalStep = core.Seconds(raw.Spirits.SpawnIntervalStep)
	cfg.Level = raw.Level

	if err := Validate(cfg); err != nil {
		return world.Config{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return cfg, nil
}

// Validate checks that cfg describes a playable world.
func Validate(cfg world.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.LevelWidth <= 0 || cfg.LevelHeight <= 0 {
		return fmt.Errorf("level size %dx%d must be positive", cfg.LevelWidth, cfg.LevelHeight)
	}
	if !slices.Contains(world.Layouts(), cfg.Layout) {
		return fmt.Errorf("unknown layout %q", cfg.Layout)
	}
	if cfg.Tiles < 0 {
		return fmt.Errorf("tiles must not be negative, got %d", cfg.Tiles)
	}

	p := cfg.Spirits
	if p.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %.1f", p.CellSize)
	}
	if p.MaxOccupants < 1 || p.SpawnCap < 1 {
		return fmt.Errorf("maxOccupants(%d) and spawnCap(%d) must be at least 1", p.MaxOccupants, p.SpawnCap)
	}
	if p.SpawnInterval <= 0 || p.MinSpawnInterval <= 0 || p.SpawnIntervalStep < 0 {
		return fmt.Errorf("spawn intervals must be positive")
	}
	if p.MinSpawnInterval > p.SpawnInterval {
		return fmt.Errorf("minSpawnInterval(%v) > spawnInterval(%v)", p.MinSpawnInterval, p.SpawnInterval)
	}
	if p.LoseCount <= 0 {
		return fmt.Errorf("loseCount must be positive, got %.1f", p.LoseCount)
	}
	if p.Smoothing < 0 || p.Smoothing > 1 {
		return fmt.Errorf("smoothing must be in [0, 1], got %.2f", p.Smoothing)
	}
	if p.Speed <= 0 || p.SeparationRadius < 0 || p.EndJitter < 0 || p.CandidateJitter < 0 {
		return fmt.Errorf("speed must be positive and jitters non-negative")
	}

	if err := ascending("startScores", cfg.Level.StartScores); err != nil {
		return err
	}
	if err := ascending("endScores", cfg.Level.EndScores); err != nil {
		return err
	}
	return nil
}

func ascending(name string, v []int) error {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return fmt.Errorf("%s must not decrease: %d after %d", name, v[i], v[i-1])
		}
	}
	return nil
}
