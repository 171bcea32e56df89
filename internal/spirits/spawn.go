package spirits

import (
	"math"
	"strconv"

	"charon/internal/core"
	"charon/internal/tilemap"
)

// NewStartState returns the spawn state for a freshly placed start.
func NewStartState(p Params) tilemap.StartState {
	return tilemap.StartState{Spawn: core.NewTimer(p.SpawnInterval)}
}

// Spawn advances every start's timer by dt seconds and spawns where allowed.
func (e *Engine) Spawn(m *tilemap.Map, dt float64) []AgentID {
	e.sync(m)
	var spawned []AgentID
	step := core.Seconds(dt)
	limit := e.params.spawnCap()
	for _, p := range m.Starts() {
		st, ok := m.Start(p)
		if !ok {
			continue
		}
		if !st.Spawn.Tick(step) {
			continue
		}
		st.Congestion += e.params.CongestionStep
		if !st.CompletedOnce || st.Occupants >= limit {
			continue
		}

		e.nextID++
		a := newAgent(e.nextID, p, e.CellCenter(p))
		st.Enter()
		e.agents = append(e.agents, a)
		spawned = append(spawned, a.ID)

		st.Congestion = math.Max(0, st.Congestion-e.params.CongestionRelief)
		if d := st.Spawn.Duration() - e.params.SpawnIntervalStep; d >= e.params.MinSpawnInterval {
			st.Spawn.SetDuration(d)
		} else {
			st.Spawn.SetDuration(e.params.MinSpawnInterval)
		}
	}
	return spawned
}

// Overrun reports whether any start's congestion reached the lose threshold.
func (e *Engine) Overrun(m *tilemap.Map) bool {
	for _, p := range m.Starts() {
		if st, ok := m.Start(p); ok && st.Congestion >= e.params.LoseCount {
			return true
		}
	}
	return false
}

// Warning renders the countdown shown above a congested start: empty while
// calm, a number of remaining attempts when close and "!!!" when about to lose.
func (p Params) Warning(congestion float64) string {
	relief := p.CongestionRelief
	if relief <= 0 {
		relief = 1
	}
	remainder := (p.LoseCount-congestion)/relief - 3
	switch {
	case remainder <= 0:
		return "!!!"
	case remainder > 10:
		return ""
	default:
		return strconv.Itoa(int(math.Round(remainder)))
	}
}
