package spirits

import (
	"math/rand/v2"
	"testing"

	"charon/pkg/vec"
)

func TestSpatialPairsMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 9))
	const radius = 50.0
	for trial := 0; trial < 50; trial++ {
		agents := make([]Agent, 2+rng.IntN(40))
		for i := range agents {
			agents[i].Pos = vec.Vec2{X: rng.Float64()*400 - 50, Y: rng.Float64() * 300}
		}
		want := map[[2]int]bool{}
		for i := range agents {
			for j := i + 1; j < len(agents); j++ {
				if agents[j].Pos.Sub(agents[i].Pos).LengthSquared() < radius*radius {
					want[[2]int{i, j}] = true
				}
			}
		}

		h := newSpatialHash(radius)
		h.rebuild(agents)
		got := map[[2]int]bool{}
		h.pairs(agents, func(i, j int, _ float64) {
			k := [2]int{i, j}
			if got[k] {
				t.Fatalf("pair %v reported twice", k)
			}
			got[k] = true
		})
		if len(got) != len(want) {
			t.Fatalf("trial %d: %d pairs, want %d", trial, len(got), len(want))
		}
		for k := range want {
			if !got[k] {
				t.Fatalf("trial %d: missing pair %v", trial, k)
			}
		}
	}
}

func TestSeparationPushesApart(t *testing.T) {
	e := NewEngine(DefaultParams(), nil)
	e.agents = []Agent{
		{ID: 1, Pos: vec.Vec2{X: 100, Y: 100}, NextPos: vec.Vec2{X: 100, Y: 100}},
		{ID: 2, Pos: vec.Vec2{X: 110, Y: 100}, NextPos: vec.Vec2{X: 110, Y: 100}},
	}
	before := e.agents[1].Pos.Sub(e.agents[0].Pos).Length()
	e.Move(frame)
	after := e.agents[1].Pos.Sub(e.agents[0].Pos).Length()
	if after <= before {
		t.Fatalf("agents did not separate: %v -> %v", before, after)
	}
}

func TestZeroRadiusDisablesSeparation(t *testing.T) {
	p := DefaultParams()
	p.SeparationRadius = 0
	e := NewEngine(p, nil)
	e.agents = []Agent{
		{ID: 1, Pos: vec.Vec2{X: 100, Y: 100}, NextPos: vec.Vec2{X: 100, Y: 100}},
		{ID: 2, Pos: vec.Vec2{X: 100.5, Y: 100}, NextPos: vec.Vec2{X: 100.5, Y: 100}},
	}
	e.Move(frame)
	for _, a := range e.agents {
		if a.Vel != (vec.Vec2{}) || a.Pos != a.NextPos {
			t.Fatalf("agent %d moved without a separation radius: pos=%v vel=%v", a.ID, a.Pos, a.Vel)
		}
	}
}
