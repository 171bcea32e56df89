package world

import (
	"slices"
	"testing"
	"time"

	"charon/internal/core"
	"charon/internal/editor"
	"charon/internal/testutil/testlog"
	"charon/internal/tilemap"
)

const frame = 1.0 / 60

func newWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := New(cfg, testlog.New(t))
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

func ferryConfig() Config {
	cfg := DefaultConfig()
	cfg.Layout = "ferry"
	return cfg
}

func drag(w *World, cells ...core.Point) int {
	edits := 0
	for i, c := range cells {
		edits += w.Tick(frame, editor.Input{Target: c, HasTarget: true, JustPressed: i == 0, Held: true}).Edits
	}
	w.Tick(frame, editor.Input{})
	return edits
}

func TestFerryRoundTrip(t *testing.T) {
	w := newWorld(t, ferryConfig())
	if got := w.Counters().Tiles; got != 3 {
		t.Fatalf("ferry budget = %d, want 3", got)
	}
	corridor := []core.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	if edits := drag(w, corridor...); edits != 3 {
		t.Fatalf("edits = %d, want 3", edits)
	}
	if w.Counters().Tiles != 0 {
		t.Fatalf("budget left = %d", w.Counters().Tiles)
	}
	end := w.Map().EndID(core.Point{X: 4, Y: 2})
	for i, c := range corridor {
		d, ok := w.Map().Traffic(c).Distance(end)
		if want := float64(3 - i); !ok || d != want {
			t.Fatalf("distance at %v = %v, want %v", c, d, want)
		}
	}
	if sh, _ := w.Map().Path(core.Point{X: 2, Y: 2}); sh.Shape != tilemap.ShapeStraight || sh.Orientation != 1 {
		t.Fatalf("middle tile = %v/%d, want horizontal straight", sh.Shape, sh.Orientation)
	}

	for tick := 0; tick < 2000 && w.Counters().Score == 0; tick++ {
		rep := w.Tick(frame, editor.Input{})
		for _, a := range rep.Arrivals {
			if a.ID == 1 && a.Hops != 4 {
				t.Fatalf("first spirit took %d hops", a.Hops)
			}
		}
	}
	if w.Counters().Score == 0 {
		t.Fatal("no spirit arrived")
	}
	if w.Counters().Best < w.Counters().Score {
		t.Fatal("best must track score")
	}

	best := w.Counters().Best
	w.Reset()
	c := w.Counters()
	if c.Score != 0 || c.Tiles != 3 || c.Best != best {
		t.Fatalf("counters after reset = %+v", c)
	}
	if w.Map().Count(tilemap.KindPath) != 0 || len(w.Agents()) != 0 {
		t.Fatal("reset must clear paths and spirits")
	}
	st, ok := w.Map().Start(core.Point{X: 0, Y: 2})
	if !ok || st.CompletedOnce || st.Occupants != 0 {
		t.Fatalf("start after reset = %+v", st)
	}
	if w.Map().Kind(core.Point{X: 4, Y: 2}) != tilemap.KindEnd {
		t.Fatal("reset must keep ends")
	}
}

func TestRoundEndsOnCongestion(t *testing.T) {
	cfg := ferryConfig()
	cfg.Spirits.LoseCount = 3
	w := newWorld(t, cfg)
	dt := (cfg.Spirits.SpawnInterval + 10*time.Millisecond).Seconds()
	var rep Report
	for i := 0; i < 3; i++ {
		rep = w.Tick(dt, editor.Input{})
	}
	if !rep.RoundOver || !w.Over() {
		t.Fatal("unconnected start should end the round after three attempts")
	}
	ticks := w.Ticks()
	if rep := w.Tick(frame, editor.Input{Target: core.Point{X: 1, Y: 2}, HasTarget: true, JustPressed: true}); !rep.RoundOver || rep.Edits != 0 {
		t.Fatalf("finished round must not advance: %+v", rep)
	}
	if w.Ticks() != ticks {
		t.Fatal("tick counter advanced after round over")
	}
	w.Reset()
	if w.Over() {
		t.Fatal("reset must start a new round")
	}
}

func TestProgressiveLayoutPlacesFirstPair(t *testing.T) {
	w := newWorld(t, DefaultConfig())
	if w.Map().Count(tilemap.KindStart) != 0 {
		t.Fatal("progressive layout starts empty")
	}
	rep := w.Tick(frame, editor.Input{})
	if len(rep.Placed) != 2 || !rep.Grew {
		t.Fatalf("first tick placed %+v grew=%v", rep.Placed, rep.Grew)
	}
	if got := w.Counters().Tiles; got != 6 {
		t.Fatalf("tiles = %d, want 6", got)
	}
	a := w.Map().Active()
	if a.W != 8 || a.H != 6 {
		t.Fatalf("active = %+v", a)
	}
	if !w.Grow(2) || w.Map().Active().W != 10 {
		t.Fatal("explicit grow should widen the level")
	}
}

func TestDeltaSplitsAcrossEnds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = "delta"
	w := newWorld(t, cfg)
	var trunk []core.Point
	for x := 1; x <= 3; x++ {
		trunk = append(trunk, core.Point{X: x, Y: 2})
	}
	up := []core.Point{{X: 3, Y: 1}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}}
	down := []core.Point{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}
	drag(w, trunk...)
	drag(w, up...)
	drag(w, down...)

	if got := w.Map().Count(tilemap.KindPath); got != 11 {
		t.Fatalf("paths = %d, want 11", got)
	}
	st, _ := w.Map().Start(core.Point{X: 0, Y: 2})
	if !st.CompletedOnce {
		t.Fatal("start should be connected")
	}
	if j, _ := w.Map().Path(core.Point{X: 3, Y: 2}); j.Shape != tilemap.ShapeJunction {
		t.Fatalf("fork = %v, want junction", j.Shape)
	}

	ends := map[core.Point]int{}
	for tick := 0; tick < 6000; tick++ {
		for _, a := range w.Tick(frame, editor.Input{}).Arrivals {
			ends[a.End]++
		}
		if w.Over() {
			t.Fatal("round ended")
		}
	}
	if len(ends) == 0 {
		t.Fatal("no arrivals")
	}
	for p := range ends {
		if w.Map().Kind(p) != tilemap.KindEnd {
			t.Fatalf("arrival recorded at %v", p)
		}
	}
}

func TestUnknownLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = "styx"
	if _, err := New(cfg, testlog.New(t)); err == nil {
		t.Fatal("expected an error for an unknown layout")
	}
	for _, name := range []string{"charon", "delta", "ferry"} {
		if !slices.Contains(Layouts(), name) {
			t.Fatalf("layout %q not registered", name)
		}
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":              "20",
		"h":              "-1",
		"layout":         "delta",
		"max_occupants":  "1",
		"spawn_interval": "0.75",
		"seed":           "9",
	})
	if cfg.Width != 20 || cfg.Height != DefaultConfig().Height {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Layout != "delta" || cfg.Seed != 9 || cfg.Spirits.MaxOccupants != 1 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Spirits.SpawnInterval != 750*time.Millisecond {
		t.Fatalf("spawn interval = %v", cfg.Spirits.SpawnInterval)
	}
}

func TestParametersSnapshot(t *testing.T) {
	w := newWorld(t, ferryConfig())
	snap := w.Parameters()
	p, ok := snap.Lookup("tiles")
	if !ok || p.Value != "3" {
		t.Fatalf("tiles parameter = %+v (ok=%v)", p, ok)
	}
	if p, ok := snap.Lookup("max_occupants"); !ok || p.Value != "3" {
		t.Fatalf("max_occupants parameter = %+v", p)
	}
}

func TestParameterSetters(t *testing.T) {
	w := newWorld(t, ferryConfig())
	if !w.SetIntParameter("max_occupants", 1) {
		t.Fatal("max_occupants should be adjustable")
	}
	if w.Engine().Params().MaxOccupants != 1 {
		t.Fatal("engine did not pick up the new cap")
	}
	if w.SetIntParameter("max_occupants", 0) {
		t.Fatal("out-of-range value accepted")
	}
	if w.SetIntParameter("speed", 100) {
		t.Fatal("float control accepted as int")
	}
	if !w.SetFloatParameter("speed", 250) || w.Config().Spirits.Speed != 250 {
		t.Fatal("speed should be adjustable")
	}
	if w.SetFloatParameter("tiles", 1) {
		t.Fatal("unknown control accepted")
	}
	if p, _ := w.Parameters().Lookup("max_occupants"); p.Value != "1" {
		t.Fatalf("snapshot not updated: %+v", p)
	}
}
