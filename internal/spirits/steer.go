package spirits

import (
	"math"

	"charon/internal/core"
	"charon/internal/tilemap"
)

type candidate struct {
	cell core.Point
	end  tilemap.EndID
	dist float64
}

type outcome uint8

const (
	keep outcome = iota
	arrived
	stranded
)

// Decide runs the tile-advance decision for every agent. Agents that reach an
// end or are left on a removed cell are despawned and reported.
func (e *Engine) Decide(m *tilemap.Map) ([]Arrival, []Stranding) {
	e.sync(m)
	var (
		arrivals []Arrival
		strands  []Stranding
	)
	live := e.agents[:0]
	for i := range e.agents {
		a := e.agents[i]
		switch e.decide(m, &a) {
		case arrived:
			a.release(m)
			arrivals = append(arrivals, Arrival{ID: a.ID, End: a.Cell, Hops: a.Hops})
		case stranded:
			a.release(m)
			strands = append(strands, Stranding{ID: a.ID, Cell: a.Cell})
		default:
			live = append(live, a)
		}
	}
	clear(e.agents[len(live):])
	e.agents = live
	return arrivals, strands
}

func (e *Engine) decide(m *tilemap.Map, a *Agent) outcome {
	tile, ok := e.CellAt(m, a.Pos)
	if !ok {
		return keep
	}
	tr := m.Traffic(tile)

	if a.HasEnd && tr != nil {
		if _, ok := tr.Distance(a.End); !ok {
			a.forgetEnd()
		}
	}

	if m.Kind(tile) == tilemap.KindEnd {
		a.Cell, a.HasNext = tile, false
		return arrived
	}

	if a.HasNext && a.Cell == tile {
		return keep
	}
	a.Cell = tile
	if a.HasNext && a.Next != tile {
		return keep
	}
	a.HasNext = false
	if tr == nil {
		a.Tracked = math.Inf(1)
	} else if a.HasEnd {
		if d, ok := tr.Distance(a.End); ok {
			a.Tracked = d
		}
	}

	e.neighbors = m.Neighbors4(e.neighbors[:0], tile)
	admissible := 0
	for _, n := range e.neighbors {
		if admissibleCell(m, n) {
			admissible++
		}
	}
	if tr == nil && admissible == 0 {
		return stranded
	}

	pick, ok := e.best(m, a, true)
	if !ok {
		pick, ok = e.best(m, a, false)
	}
	if !ok {
		a.HasPrev = false
		a.HasEnd = false
		return keep
	}

	a.Prev, a.HasPrev = tile, true
	a.Next, a.HasNext = pick.cell, true
	a.NextPos = e.CellCenter(pick.cell)
	a.End, a.HasEnd = pick.end, true
	a.Tracked = pick.dist
	a.hold(m, pick.cell)
	a.Hops++
	return keep
}

// admissibleCell reports whether an agent may ever step onto p.
func admissibleCell(m *tilemap.Map, p core.Point) bool {
	k := m.Kind(p)
	return k == tilemap.KindPath || k == tilemap.KindEnd
}

// best picks the closest admissible neighbour that improves on the agent's
// tracked distance. With skipPrev the previous cell is not considered.
func (e *Engine) best(m *tilemap.Map, a *Agent, skipPrev bool) (candidate, bool) {
	var (
		pick  candidate
		found bool
	)
	for _, n := range e.neighbors {
		if !admissibleCell(m, n) {
			continue
		}
		if skipPrev && a.HasPrev && n == a.Prev {
			continue
		}
		tr := m.Traffic(n)
		if tr.Occupants >= e.params.MaxOccupants {
			continue
		}
		c, ok := e.score(m, a, n, tr)
		if !ok || c.dist >= a.Tracked {
			continue
		}
		if !found || c.dist < pick.dist {
			pick, found = c, true
		}
	}
	return pick, found
}

// score computes the jittered candidate distance for stepping onto n.
func (e *Engine) score(m *tilemap.Map, a *Agent, n core.Point, tr *tilemap.Traffic) (candidate, bool) {
	c := candidate{cell: n}
	if a.HasEnd {
		d, ok := tr.Distance(a.End)
		if !ok {
			return c, false
		}
		c.end, c.dist = a.End, d
	} else {
		key := math.Inf(1)
		found := false
		for _, ep := range m.Ends() {
			id := m.EndID(ep)
			d, ok := tr.Distance(id)
			if !ok {
				continue
			}
			if k := d + e.rng.Jitter(e.params.EndJitter); !found || k < key {
				key, c.end, c.dist, found = k, id, d, true
			}
		}
		if !found {
			return c, false
		}
	}
	c.dist += e.rng.Range(0, e.params.CandidateJitter)
	return c, true
}
