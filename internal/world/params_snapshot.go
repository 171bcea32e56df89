package world

import (
	"strconv"

	"charon/internal/core"
	"charon/internal/tilemap"
)

// Parameters reports the tuning and live counters for display.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Spirits
	a := w.m.Active()
	groups := []core.ParameterGroup{
		{
			Name: "Round",
			Params: []core.Parameter{
				intParam("score", "Score", w.counters.Score),
				intParam("best", "Best", w.counters.Best),
				intParam("tiles", "Tiles available", w.counters.Tiles),
				intParam("agents", "Spirits", w.engine.Len()),
				boolParam("over", "Round over", w.over),
			},
		},
		{
			Name: "Level",
			Params: []core.Parameter{
				intParam("w", "Width", w.m.W),
				intParam("h", "Height", w.m.H),
				intParam("level_w", "Level width", a.W),
				intParam("level_h", "Level height", a.H),
				intParam("starts", "Starts", w.m.Count(tilemap.KindStart)),
				intParam("ends", "Ends", w.m.Count(tilemap.KindEnd)),
				intParam("paths", "Paths", w.m.Count(tilemap.KindPath)),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Spirits",
			Params: []core.Parameter{
				intParam("max_occupants", "Max per tile", p.MaxOccupants),
				intParam("spawn_cap", "Spawn cap", p.SpawnCap),
				floatParam("spawn_interval", "Spawn interval", p.SpawnInterval.Seconds()),
				floatParam("min_spawn_interval", "Min spawn interval", p.MinSpawnInterval.Seconds()),
				floatParam("lose_count", "Lose count", p.LoseCount),
				floatParam("speed", "Speed", p.Speed),
				floatParam("separation", "Separation radius", p.SeparationRadius),
				floatParam("end_jitter", "End jitter", p.EndJitter),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
