package tilemap

import (
	"testing"

	"charon/internal/core"
)

func TestRolesAreExclusive(t *testing.T) {
	m := New(4, 4)
	start := core.Point{X: 0, Y: 1}
	end := core.Point{X: 3, Y: 1}
	if ok, _ := m.PlaceStart(start, StartState{}); !ok {
		t.Fatal("expected start placement")
	}
	if ok, _ := m.PlaceEnd(end); !ok {
		t.Fatal("expected end placement")
	}
	if m.SetPath(start) || m.SetPath(end) {
		t.Fatal("path must not overwrite start or end")
	}
	if m.ClearPath(start) || m.ClearPath(end) {
		t.Fatal("ClearPath must not remove start or end")
	}
	if ok, _ := m.PlaceEnd(start); ok {
		t.Fatal("end must not overwrite a start")
	}
	if m.Kind(start) != KindStart || m.Kind(end) != KindEnd {
		t.Fatalf("kinds changed: %v %v", m.Kind(start), m.Kind(end))
	}
	if id := m.EndID(end); m.EndPoint(id) != end {
		t.Fatalf("end id %d does not map back to %v", id, end)
	}
}

func TestGenerationAdvancesOnChange(t *testing.T) {
	m := New(3, 3)
	g0 := m.Generation()
	p := core.Point{X: 1, Y: 1}
	if !m.SetPath(p) {
		t.Fatal("expected path added")
	}
	if m.Generation() == g0 {
		t.Fatal("generation should advance on add")
	}
	g1 := m.Generation()
	if m.SetPath(p) {
		t.Fatal("duplicate add should fail")
	}
	if m.Generation() != g1 {
		t.Fatal("failed edit must not advance generation")
	}
	if !m.ClearPath(p) || m.Generation() == g1 {
		t.Fatal("remove should succeed and advance generation")
	}
}

func TestOffGridIsEmpty(t *testing.T) {
	m := New(2, 2)
	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 0, Y: 2}, {X: 5, Y: 5}} {
		if m.At(p) != nil || m.Traversable(p) || m.Traffic(p) != nil {
			t.Fatalf("off-grid point %v should be empty", p)
		}
		if m.SetPath(p) {
			t.Fatalf("off-grid point %v accepted a path", p)
		}
	}
}

func TestPlaceOverPathReportsReplacement(t *testing.T) {
	m := New(3, 1)
	p := core.Point{X: 1, Y: 0}
	m.SetPath(p)
	placed, replaced := m.PlaceEnd(p)
	if !placed || !replaced {
		t.Fatalf("expected replacement, got placed=%v replaced=%v", placed, replaced)
	}
	if m.Count(KindPath) != 0 || m.Count(KindEnd) != 1 {
		t.Fatal("path should be replaced by end")
	}
}

func TestClearPathsKeepsStartsAndEnds(t *testing.T) {
	m := New(5, 1)
	m.PlaceStart(core.Point{X: 0, Y: 0}, StartState{})
	m.PlaceEnd(core.Point{X: 4, Y: 0})
	for x := 1; x < 4; x++ {
		m.SetPath(core.Point{X: x, Y: 0})
	}
	if n := m.ClearPaths(); n != 3 {
		t.Fatalf("expected 3 paths cleared, got %d", n)
	}
	if len(m.Starts()) != 1 || len(m.Ends()) != 1 || m.Count(KindStart) != 1 {
		t.Fatal("starts and ends must survive ClearPaths")
	}
}

func TestTrafficLeaveSaturates(t *testing.T) {
	var tr Traffic
	tr.Leave()
	if tr.Occupants != 0 {
		t.Fatalf("occupants went negative: %d", tr.Occupants)
	}
	tr.Enter()
	tr.Enter()
	tr.Leave()
	if tr.Occupants != 1 {
		t.Fatalf("expected 1 occupant, got %d", tr.Occupants)
	}
	if _, ok := tr.Distance(3); ok {
		t.Fatal("no distance recorded yet")
	}
	tr.SetDistance(3, 2)
	if d, ok := tr.Distance(3); !ok || d != 2 {
		t.Fatalf("distance lookup = %v %v", d, ok)
	}
}

func TestSetActiveClamps(t *testing.T) {
	m := New(10, 6)
	m.SetActive(core.Rect{X: -2, Y: 4, W: 20, H: 5})
	if got := m.Active(); got != (core.Rect{X: 0, Y: 4, W: 10, H: 2}) {
		t.Fatalf("unexpected clamp %+v", got)
	}
}
