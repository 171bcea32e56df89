package spirits

import (
	"math"

	"charon/internal/core"
	"charon/internal/tilemap"
	pcore "charon/pkg/core"
	"charon/pkg/vec"
)

// Arrival records an agent that reached an end cell.
type Arrival struct {
	ID   AgentID
	End  core.Point
	Hops int
}

// Stranding records an agent despawned because the network vanished under it.
type Stranding struct {
	ID   AgentID
	Cell core.Point
}

// Report summarises one engine step.
type Report struct {
	Spawned  []AgentID
	Arrivals []Arrival
	Stranded []Stranding
}

// Engine owns every live agent and advances them against a tile map.
type Engine struct {
	params  Params
	rng     *pcore.RNG
	agents  []Agent
	nextID  AgentID
	elapsed float64

	hash      spatialHash
	neighbors []core.Point

	// occupancy on synced was last recounted at generation syncGen.
	synced  *tilemap.Map
	syncGen uint64
}

// NewEngine constructs an engine. A nil rng is replaced with a seed-zero generator.
func NewEngine(p Params, rng *pcore.RNG) *Engine {
	if rng == nil {
		rng = pcore.NewRNG(0)
	}
	return &Engine{
		params: p,
		rng:    rng,
		hash:   newSpatialHash(p.SeparationRadius),
	}
}

// Params returns the engine tuning.
func (e *Engine) Params() Params { return e.params }

// SetParams replaces the tuning. Live agents keep their state.
func (e *Engine) SetParams(p Params) {
	e.params = p
	e.hash = newSpatialHash(p.SeparationRadius)
}

// Agents exposes the live agents in spawn order. The slice is owned by the engine.
func (e *Engine) Agents() []Agent { return e.agents }

// Len returns the number of live agents.
func (e *Engine) Len() int { return len(e.agents) }

// Clear despawns every agent and releases their occupancy on m.
func (e *Engine) Clear(m *tilemap.Map) {
	for i := range e.agents {
		e.agents[i].release(m)
	}
	e.agents = e.agents[:0]
	e.elapsed = 0
}

// Resync recounts every cell's occupants from the cells the live agents hold.
// Roles recreated by an edit start empty, so agents still holding that cell
// are counted back onto it.
func (e *Engine) Resync(m *tilemap.Map) {
	m.Each(func(_ core.Point, r tilemap.Role) {
		if tr := tilemap.TrafficOf(r); tr != nil {
			tr.Occupants = 0
		}
	})
	for i := range e.agents {
		if p, ok := e.agents[i].Held(); ok {
			if tr := m.Traffic(p); tr != nil {
				tr.Enter()
			}
		}
	}
	e.synced, e.syncGen = m, m.Generation()
}

// sync recounts occupancy when m changed since the last recount.
func (e *Engine) sync(m *tilemap.Map) {
	if e.synced != m || e.syncGen != m.Generation() {
		e.Resync(m)
	}
}

// Step runs spawn, decision and motion in order.
func (e *Engine) Step(m *tilemap.Map, dt float64) Report {
	var rep Report
	rep.Spawned = e.Spawn(m, dt)
	rep.Arrivals, rep.Stranded = e.Decide(m)
	e.Move(dt)
	return rep
}

// CellCenter returns the world position of the centre of p.
func (e *Engine) CellCenter(p core.Point) vec.Vec2 {
	s := e.params.CellSize
	return vec.Vec2{X: (float64(p.X) + 0.5) * s, Y: (float64(p.Y) + 0.5) * s}
}

// CellAt maps a world position to its grid cell. It reports false off-grid.
func (e *Engine) CellAt(m *tilemap.Map, pos vec.Vec2) (core.Point, bool) {
	s := e.params.CellSize
	if s <= 0 {
		return core.Point{}, false
	}
	p := core.Point{X: int(math.Floor(pos.X / s)), Y: int(math.Floor(pos.Y / s))}
	return p, m.InBounds(p)
}
