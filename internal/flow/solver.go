// Package flow computes per-end distance fields over the path network.
package flow

import (
	"charon/internal/core"
	"charon/internal/tilemap"
)

// Result summarises one recompute.
type Result struct {
	Ends    int
	Reached int
	// Completed lists starts that became connected for the first time.
	Completed []core.Point
}

// Solver recomputes distance fields when the map generation advances.
type Solver struct {
	solved bool
	gen    uint64

	heap      minHeap
	neighbors []core.Point
}

// NewSolver returns a solver that will run on its first Update.
func NewSolver() *Solver { return &Solver{} }

// Stale reports whether the map changed since the last solve.
func (s *Solver) Stale(m *tilemap.Map) bool {
	return !s.solved || s.gen != m.Generation()
}

// Invalidate forces the next Update to recompute.
func (s *Solver) Invalidate() { s.solved = false }

// Update recomputes when stale and reports whether it ran.
func (s *Solver) Update(m *tilemap.Map) (Result, bool) {
	if !s.Stale(m) {
		return Result{}, false
	}
	res := s.Solve(m)
	s.gen = m.Generation()
	s.solved = true
	return res, true
}

// Solve recomputes every distance field from scratch, one uniform-cost
// expansion per end in placement order.
func (s *Solver) Solve(m *tilemap.Map) Result {
	m.Each(func(_ core.Point, r tilemap.Role) {
		tilemap.TrafficOf(r).ClearDistances()
	})

	res := Result{Ends: len(m.Ends())}
	for _, endPos := range m.Ends() {
		end, ok := m.End(endPos)
		if !ok {
			continue
		}
		res.Reached += s.expand(m, endPos, end)

		for _, sp := range m.Starts() {
			st, ok := m.Start(sp)
			if !ok {
				continue
			}
			if _, reached := st.Distance(end.ID); !reached {
				continue
			}
			if !st.CompletedOnce {
				st.CompletedOnce = true
				res.Completed = append(res.Completed, sp)
			}
			// Starts are sources, never a way back toward the end.
			st.SetDistance(end.ID, tilemap.Unreachable)
		}
	}
	return res
}

func (s *Solver) expand(m *tilemap.Map, endPos core.Point, end *tilemap.End) int {
	id := end.ID
	end.SetDistance(id, 0)

	reached := 0
	s.heap = s.heap[:0]
	s.heap.push(heapEntry{idx: m.Index(endPos), dist: 0})

	for len(s.heap) > 0 {
		entry := s.heap.pop()
		p := m.Grid.Point(entry.idx)
		tr := m.Traffic(p)
		if d, ok := tr.Distance(id); ok && entry.dist > d {
			continue
		}

		// Only the source end and path cells propagate.
		if p != endPos && m.Kind(p) != tilemap.KindPath {
			continue
		}
		reached++

		s.neighbors = m.Neighbors4(s.neighbors[:0], p)
		for _, n := range s.neighbors {
			ntr := m.Traffic(n)
			if ntr == nil {
				continue
			}
			nd := entry.dist + 1
			if cur, ok := ntr.Distance(id); ok && nd >= cur {
				continue
			}
			ntr.SetDistance(id, nd)
			s.heap.push(heapEntry{idx: m.Index(n), dist: nd})
		}
	}
	return reached
}
