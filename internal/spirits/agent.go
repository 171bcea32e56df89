package spirits

import (
	"math"

	"charon/internal/core"
	"charon/internal/tilemap"
	"charon/pkg/vec"
)

// AgentID is assigned in spawn order and never reused within an engine.
type AgentID uint64

// Agent is one spirit travelling the network.
type Agent struct {
	ID     AgentID
	Origin core.Point

	Cell    core.Point
	Prev    core.Point
	HasPrev bool

	Next    core.Point
	NextPos vec.Vec2
	HasNext bool

	End    tilemap.EndID
	HasEnd bool
	// Tracked is the distance the agent must improve on to advance.
	Tracked float64

	Pos vec.Vec2
	Vel vec.Vec2

	Hops int

	held    core.Point
	holding bool
}

func newAgent(id AgentID, cell core.Point, pos vec.Vec2) Agent {
	return Agent{
		ID:      id,
		Origin:  cell,
		Cell:    cell,
		Prev:    cell,
		HasPrev: true,
		NextPos: pos,
		Tracked: math.Inf(1),
		Pos:     pos,
		held:    cell,
		holding: true,
	}
}

// Held returns the cell whose occupancy this agent counts toward.
func (a *Agent) Held() (core.Point, bool) { return a.held, a.holding }

func (a *Agent) release(m *tilemap.Map) {
	if !a.holding {
		return
	}
	if tr := m.Traffic(a.held); tr != nil {
		tr.Leave()
	}
	a.holding = false
}

func (a *Agent) hold(m *tilemap.Map, p core.Point) {
	a.release(m)
	if tr := m.Traffic(p); tr != nil {
		tr.Enter()
	}
	a.held, a.holding = p, true
}

func (a *Agent) forgetEnd() {
	a.HasEnd = false
	a.HasNext = false
	a.Tracked = math.Inf(1)
}
