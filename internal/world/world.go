// Package world runs the per-tick pipeline: edits, field recomputation,
// level progression, spawning, decisions and motion.
package world

import (
	"github.com/rs/zerolog"

	"charon/internal/autotile"
	"charon/internal/editor"
	"charon/internal/flow"
	"charon/internal/level"
	"charon/internal/spirits"
	"charon/internal/tilemap"
	pcore "charon/pkg/core"
)

// Counters are the aggregate numbers collaborators read.
type Counters struct {
	Score int
	Tiles int
	Best  int
}

// Take spends one tile from the budget.
func (c *Counters) Take() bool {
	if c.Tiles <= 0 {
		return false
	}
	c.Tiles--
	return true
}

// Give returns one tile to the budget.
func (c *Counters) Give() { c.Tiles++ }

// Report summarises one tick.
type Report struct {
	Edits     int
	Spawned   int
	Arrivals  []spirits.Arrival
	Stranded  []spirits.Stranding
	Placed    []level.Placement
	Grew      bool
	RoundOver bool
}

// World owns the map and every system that reads or writes it.
type World struct {
	cfg    Config
	log    zerolog.Logger
	layout Layout

	m        *tilemap.Map
	editor   *editor.Editor
	solver   *flow.Solver
	tiler    *autotile.Tiler
	engine   *spirits.Engine
	progress *level.Progression

	counters Counters
	over     bool
	ticks    uint64
}

// New builds a world from cfg.
func New(cfg Config, log zerolog.Logger) (*World, error) {
	layout, err := lookupLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	w := &World{cfg: cfg, log: log.With().Str("layout", cfg.Layout).Logger(), layout: layout}
	w.build()
	return w, nil
}

func (w *World) build() {
	rng := pcore.NewRNG(w.cfg.Seed)
	setup := w.layout(w.cfg, w.newStart)
	w.m = setup.Map
	w.editor = editor.New()
	w.solver = flow.NewSolver()
	w.tiler = &autotile.Tiler{}
	w.engine = spirits.NewEngine(w.cfg.Spirits, rng)
	w.progress = nil
	if setup.Progressive {
		w.progress = level.New(w.cfg.Level, pcore.NewRNG(w.cfg.Seed+1))
	}
	w.counters = Counters{Tiles: setup.Tiles, Best: w.counters.Best}
	w.over = false
	w.ticks = 0
	w.refresh()
}

func (w *World) newStart() tilemap.StartState { return spirits.NewStartState(w.cfg.Spirits) }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Map exposes the tile map for rendering. Callers must not mutate it.
func (w *World) Map() *tilemap.Map { return w.m }

// Agents exposes the live agents for rendering.
func (w *World) Agents() []spirits.Agent { return w.engine.Agents() }

// Engine exposes the steering engine.
func (w *World) Engine() *spirits.Engine { return w.engine }

// Counters returns score, budget and best score.
func (w *World) Counters() Counters { return w.counters }

// SetBest seeds the best score, typically from the score store.
func (w *World) SetBest(best int) {
	if best > w.counters.Best {
		w.counters.Best = best
	}
}

// Over reports whether the round has ended.
func (w *World) Over() bool { return w.over }

// Ticks returns the number of ticks run since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Tick advances the world by dt seconds with the frame's input.
func (w *World) Tick(dt float64, in editor.Input) Report {
	var rep Report
	if w.over {
		rep.RoundOver = true
		return rep
	}
	w.ticks++

	rep.Edits = w.editor.Apply(w.m, &w.counters, in)
	w.refresh()

	if w.progress != nil {
		up := w.progress.Advance(w.m, w.counters.Score, w.newStart)
		w.counters.Tiles += up.Tiles
		for _, pl := range up.Placed {
			if pl.Replaced {
				w.counters.Give()
			}
			w.log.Info().Str("kind", pl.Kind.String()).Int("x", pl.At.X).Int("y", pl.At.Y).Int("score", w.counters.Score).Msg("placed")
		}
		if up.Grew {
			a := w.m.Active()
			w.log.Info().Int("w", a.W).Int("h", a.H).Msg("level grew")
		}
		rep.Placed, rep.Grew = up.Placed, up.Grew
		if up.Changed() {
			w.refresh()
		}
	}

	step := w.engine.Step(w.m, dt)
	rep.Spawned = len(step.Spawned)
	rep.Arrivals = step.Arrivals
	rep.Stranded = step.Stranded
	w.counters.Score += len(step.Arrivals)
	w.counters.Best = max(w.counters.Best, w.counters.Score)
	for _, s := range step.Stranded {
		w.log.Debug().Uint64("agent", uint64(s.ID)).Int("x", s.Cell.X).Int("y", s.Cell.Y).Msg("stranded")
	}

	if w.engine.Overrun(w.m) {
		w.over = true
		rep.RoundOver = true
		w.log.Info().Int("score", w.counters.Score).Int("best", w.counters.Best).Uint64("ticks", w.ticks).Msg("round over")
	}
	return rep
}

// refresh recomputes the distance field and tile shapes when the network changed.
func (w *World) refresh() {
	if res, ran := w.solver.Update(w.m); ran {
		w.log.Debug().Int("ends", res.Ends).Int("reached", res.Reached).Uint64("gen", w.m.Generation()).Msg("flow solved")
		for _, p := range res.Completed {
			w.log.Info().Int("x", p.X).Int("y", p.Y).Msg("start connected")
		}
	}
	w.tiler.Update(w.m)
}

// Reset ends the round: paths and agents are cleared, the budget refunded,
// start states and the score reset. Starts and ends stay where they are.
func (w *World) Reset() {
	w.engine.Clear(w.m)
	w.counters.Tiles += w.m.ClearPaths()
	for _, p := range w.m.Starts() {
		if st, ok := w.m.Start(p); ok {
			st.StartState = w.newStart()
		}
	}
	w.m.Touch()
	w.editor.Release()
	if w.progress != nil {
		w.progress.Restart()
	}
	w.log.Info().Int("score", w.counters.Score).Int("best", w.counters.Best).Msg("reset")
	w.counters.Score = 0
	w.over = false
	w.ticks = 0
	w.refresh()
}

// Rebuild discards the map and starts over from the layout.
func (w *World) Rebuild(seed int64) {
	w.cfg.Seed = seed
	w.build()
}

// Grow enlarges the active rectangle by n cells per axis.
func (w *World) Grow(n int) bool {
	grew := level.Grow(w.m, n)
	if grew {
		a := w.m.Active()
		w.log.Info().Int("w", a.W).Int("h", a.H).Msg("level grew")
	}
	return grew
}
