package world

import (
	"strconv"

	"charon/internal/core"
	"charon/internal/level"
	"charon/internal/spirits"
)

// Config controls the world layout and tuning.
type Config struct {
	Width  int
	Height int

	LevelWidth  int
	LevelHeight int

	Seed   int64
	Layout string

	// Tiles is the path budget granted before any placement rewards.
	Tiles int

	Spirits spirits.Params
	Level   level.Config
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       15,
		Height:      10,
		LevelWidth:  6,
		LevelHeight: 4,
		Seed:        1337,
		Layout:      "charon",
		Spirits:     spirits.DefaultParams(),
		Level:       level.DefaultConfig(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["level_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.LevelWidth = parsed
		}
	}
	if v, ok := cfg["level_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.LevelHeight = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["layout"]; ok && v != "" {
		c.Layout = v
	}
	if v, ok := cfg["tiles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Tiles = parsed
		}
	}
	if v, ok := cfg["max_occupants"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Spirits.MaxOccupants = parsed
		}
	}
	if v, ok := cfg["spawn_cap"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Spirits.SpawnCap = parsed
		}
	}
	if v, ok := cfg["spawn_interval"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spirits.SpawnInterval = core.Seconds(parsed)
		}
	}
	if v, ok := cfg["min_spawn_interval"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spirits.MinSpawnInterval = core.Seconds(parsed)
		}
	}
	if v, ok := cfg["lose_count"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spirits.LoseCount = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spirits.Speed = parsed
		}
	}
	if v, ok := cfg["separation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Spirits.SeparationRadius = parsed
		}
	}
	if v, ok := cfg["end_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Spirits.EndJitter = parsed
		}
	}
	return c
}
