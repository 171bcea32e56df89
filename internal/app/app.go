//go:build ebiten

package app

import (
	"fmt"
	"math"

	"charon/internal/config"
	"charon/internal/core"
	"charon/internal/editor"
	"charon/internal/render"
	"charon/internal/store"
	"charon/internal/ui"
	"charon/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	world   *world.World
	scores  *store.Scores
	log     zerolog.Logger
	painter *render.TilePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	keys    bindings

	dt       float64
	hudWidth int
	paused   bool
	tickOnce bool
	finished bool
}

// New constructs a Game for w. scores may be memory-only.
func New(w *world.World, scores *store.Scores, kb config.Keybinds, cfg *Config, log zerolog.Logger) (*Game, error) {
	keys, err := resolve(kb)
	if err != nil {
		return nil, err
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	m := w.Map()
	w.SetBest(scores.Record().Best)
	return &Game{
		world:    w,
		scores:   scores,
		log:      log,
		painter:  render.NewTilePainter(m.W, m.H),
		hud:      ui.NewHUD(w, "Charon", cfg.HUDWidth),
		overlay:  ui.NewOverlay(keys.heat),
		keys:     keys,
		dt:       1 / float64(tps),
		hudWidth: cfg.HUDWidth,
	}, nil
}

// Update handles per-frame logic and advances the world.
func (g *Game) Update() error {
	if g.keys.quit.justPressed() {
		return ebiten.Termination
	}
	if g.keys.pause.justPressed() {
		g.paused = !g.paused
	}
	if g.keys.step.justPressed() {
		g.tickOnce = true
	}
	if g.keys.reset.justPressed() {
		g.finish()
		g.world.Reset()
		g.finished = false
	}
	if g.keys.grow.justPressed() {
		g.world.Grow(2)
	}
	g.overlay.Update()
	g.hud.Update(g.gridWidth())

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false
	rep := g.world.Tick(g.dt, g.input())
	if rep.RoundOver {
		g.finish()
	}
	return nil
}

// finish records the round's score once.
func (g *Game) finish() {
	if g.finished {
		return
	}
	g.finished = true
	score := g.world.Counters().Score
	if err := g.scores.Finish(score); err != nil {
		g.log.Error().Err(err).Msg("save scores")
	}
}

func (g *Game) input() editor.Input {
	mx, my := ebiten.CursorPosition()
	cell := g.world.Config().Spirits.CellSize
	p := core.Point{X: int(math.Floor(float64(mx) / cell)), Y: int(math.Floor(float64(my) / cell))}
	return editor.Input{
		Target:      p,
		HasTarget:   mx >= 0 && my >= 0 && mx < g.gridWidth() && g.world.Map().InBounds(p),
		JustPressed: g.keys.edit.justPressed(),
		Held:        g.keys.edit.pressed(),
	}
}

// Draw renders the map, agents, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	cell := g.world.Config().Spirits.CellSize
	g.painter.Draw(screen, g.world.Map(), cell, g.overlay.Heat)
	g.overlay.Draw(screen, g.world)
	g.hud.Draw(screen, g.gridWidth(), g.gridHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hudWidth, g.gridHeight()
}

func (g *Game) gridWidth() int {
	return int(float64(g.world.Map().W) * g.world.Config().Spirits.CellSize)
}

func (g *Game) gridHeight() int {
	return int(float64(g.world.Map().H) * g.world.Config().Spirits.CellSize)
}

// Title names the window after the layout.
func (g *Game) Title() string {
	return fmt.Sprintf("charon: %s", g.world.Config().Layout)
}
