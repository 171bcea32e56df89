package world

import (
	"charon/internal/core"
)

// ParameterControls lists the tunables the HUD may adjust during a round.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "max_occupants", Label: "Max per tile", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 9, HasMin: true, HasMax: true},
		{Key: "spawn_cap", Label: "Spawn cap", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 9, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 10, Min: 10, Max: 600, HasMin: true, HasMax: true},
		{Key: "separation", Label: "Separation", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 144, HasMin: true, HasMax: true},
		{Key: "end_jitter", Label: "End jitter", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 20, HasMin: true, HasMax: true},
	}
}

func (w *World) control(key string) (core.ParameterControl, bool) {
	for _, c := range w.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer tunable. Values outside the control's
// bounds are rejected.
func (w *World) SetIntParameter(key string, value int) bool {
	c, ok := w.control(key)
	if !ok || c.Type != core.ParamTypeInt || c.Clamp(float64(value)) != float64(value) {
		return false
	}
	switch key {
	case "max_occupants":
		w.cfg.Spirits.MaxOccupants = value
	case "spawn_cap":
		w.cfg.Spirits.SpawnCap = value
	default:
		return false
	}
	w.engine.SetParams(w.cfg.Spirits)
	return true
}

// SetFloatParameter updates a floating point tunable. Values outside the
// control's bounds are rejected.
func (w *World) SetFloatParameter(key string, value float64) bool {
	c, ok := w.control(key)
	if !ok || c.Type != core.ParamTypeFloat || c.Clamp(value) != value {
		return false
	}
	switch key {
	case "speed":
		w.cfg.Spirits.Speed = value
	case "separation":
		w.cfg.Spirits.SeparationRadius = value
	case "end_jitter":
		w.cfg.Spirits.EndJitter = value
	default:
		return false
	}
	w.engine.SetParams(w.cfg.Spirits)
	return true
}
