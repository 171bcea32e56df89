package tilemap

import (
	"charon/internal/core"
)

// Map is the fixed grid of cells. Cells are addressed by flat index; roles
// hold no references to one another.
type Map struct {
	core.Grid

	cells  []Role
	starts []core.Point
	ends   []core.Point
	active core.Rect
	gen    uint64
}

// New allocates an empty map. The whole grid starts out active.
func New(w, h int) *Map {
	g := core.NewGrid(w, h)
	return &Map{
		Grid:   g,
		cells:  make([]Role, g.Len()),
		active: core.Rect{W: g.W, H: g.H},
	}
}

// Generation is advanced by every change to the network topology.
func (m *Map) Generation() uint64 { return m.gen }

// Touch advances the generation without a topology change, forcing
// dependants to recompute.
func (m *Map) Touch() { m.gen++ }

// At returns the role of p, or nil when p is empty or off-grid.
func (m *Map) At(p core.Point) Role {
	if !m.InBounds(p) {
		return nil
	}
	return m.cells[m.Index(p)]
}

// Kind returns the kind of cell p. Off-grid points are empty.
func (m *Map) Kind(p core.Point) Kind { return KindOf(m.At(p)) }

// Traffic returns the routing payload at p, nil for empty or off-grid cells.
func (m *Map) Traffic(p core.Point) *Traffic { return TrafficOf(m.At(p)) }

// Traversable reports whether agents can stand on p.
func (m *Map) Traversable(p core.Point) bool { return m.At(p) != nil }

// Path returns the path payload at p.
func (m *Map) Path(p core.Point) (*Path, bool) {
	r, ok := m.At(p).(*Path)
	return r, ok
}

// Start returns the start payload at p.
func (m *Map) Start(p core.Point) (*Start, bool) {
	r, ok := m.At(p).(*Start)
	return r, ok
}

// End returns the end payload at p.
func (m *Map) End(p core.Point) (*End, bool) {
	r, ok := m.At(p).(*End)
	return r, ok
}

// SetPath turns an empty cell into a path cell.
func (m *Map) SetPath(p core.Point) bool {
	if !m.InBounds(p) || m.cells[m.Index(p)] != nil {
		return false
	}
	m.cells[m.Index(p)] = &Path{}
	m.gen++
	return true
}

// ClearPath empties a path cell. Start and end cells are left alone.
func (m *Map) ClearPath(p core.Point) bool {
	if _, ok := m.Path(p); !ok {
		return false
	}
	m.cells[m.Index(p)] = nil
	m.gen++
	return true
}

// ClearPaths empties every path cell and returns how many were removed.
func (m *Map) ClearPaths() int {
	n := 0
	for i, r := range m.cells {
		if _, ok := r.(*Path); ok {
			m.cells[i] = nil
			n++
		}
	}
	if n > 0 {
		m.gen++
	}
	return n
}

// PlaceStart puts a start on an empty or path cell. replaced reports whether
// a path cell was overwritten.
func (m *Map) PlaceStart(p core.Point, st StartState) (placed, replaced bool) {
	if !m.placeable(p) {
		return false, false
	}
	replaced = m.Kind(p) == KindPath
	m.cells[m.Index(p)] = &Start{StartState: st}
	m.starts = append(m.starts, p)
	m.gen++
	return true, replaced
}

// PlaceEnd puts an end on an empty or path cell. replaced reports whether a
// path cell was overwritten.
func (m *Map) PlaceEnd(p core.Point) (placed, replaced bool) {
	if !m.placeable(p) {
		return false, false
	}
	replaced = m.Kind(p) == KindPath
	m.cells[m.Index(p)] = &End{ID: m.EndID(p)}
	m.ends = append(m.ends, p)
	m.gen++
	return true, replaced
}

func (m *Map) placeable(p core.Point) bool {
	if !m.InBounds(p) {
		return false
	}
	k := m.Kind(p)
	return k == KindEmpty || k == KindPath
}

// Starts lists start cells in placement order. The slice must not be modified.
func (m *Map) Starts() []core.Point { return m.starts }

// Ends lists end cells in placement order. The slice must not be modified.
func (m *Map) Ends() []core.Point { return m.ends }

// EndID returns the identifier an end at p has.
func (m *Map) EndID(p core.Point) EndID { return EndID(m.Index(p)) }

// EndPoint returns the cell of an end identifier.
func (m *Map) EndPoint(id EndID) core.Point { return m.Grid.Point(int(id)) }

// Active returns the playable sub-rectangle.
func (m *Map) Active() core.Rect { return m.active }

// SetActive replaces the playable sub-rectangle, clamped to the grid.
func (m *Map) SetActive(r core.Rect) {
	if r.X < 0 {
		r.W += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.H += r.Y
		r.Y = 0
	}
	if r.X+r.W > m.W {
		r.W = m.W - r.X
	}
	if r.Y+r.H > m.H {
		r.H = m.H - r.Y
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	m.active = r
}

// Each calls fn for every non-empty cell in index order.
func (m *Map) Each(fn func(p core.Point, r Role)) {
	for i, r := range m.cells {
		if r != nil {
			fn(m.Grid.Point(i), r)
		}
	}
}

// Count returns the number of cells of kind k.
func (m *Map) Count(k Kind) int {
	n := 0
	for _, r := range m.cells {
		if KindOf(r) == k {
			n++
		}
	}
	return n
}
