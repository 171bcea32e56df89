package core

import (
	"testing"
	"time"
)

func TestNeighbors4FiltersOffGrid(t *testing.T) {
	g := NewGrid(3, 3)
	cases := []struct {
		p    Point
		want int
	}{
		{Point{0, 0}, 2},
		{Point{1, 0}, 3},
		{Point{1, 1}, 4},
		{Point{2, 2}, 2},
	}
	for _, tc := range cases {
		got := g.Neighbors4(nil, tc.p)
		if len(got) != tc.want {
			t.Fatalf("Neighbors4(%v) = %v, want %d entries", tc.p, got, tc.want)
		}
		for _, n := range got {
			if !g.InBounds(n) || !n.Adjacent(tc.p) {
				t.Fatalf("Neighbors4(%v) returned invalid neighbour %v", tc.p, n)
			}
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 4)
	for i := 0; i < g.Len(); i++ {
		if got := g.Index(g.Point(i)); got != i {
			t.Fatalf("index %d round-tripped to %d", i, got)
		}
	}
}

func TestCenteredAndBorder(t *testing.T) {
	r := Centered(Size{W: 9, H: 7}, 5, 3)
	if r != (Rect{X: 2, Y: 2, W: 5, H: 3}) {
		t.Fatalf("unexpected centered rect %+v", r)
	}
	border := r.Border()
	if len(border) != 5*3-3 {
		t.Fatalf("expected %d border cells, got %d", 5*3-3, len(border))
	}
	if r.Contains(Point{7, 2}) || !r.Contains(Point{6, 4}) {
		t.Fatal("Contains boundary incorrect")
	}
	clamped := Centered(Size{W: 4, H: 4}, 10, 10)
	if clamped != (Rect{W: 4, H: 4}) {
		t.Fatalf("expected clamp to full grid, got %+v", clamped)
	}
}

func TestTimerFiresOncePerPeriod(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	fired := 0
	for i := 0; i < 30; i++ {
		if tm.Tick(10 * time.Millisecond) {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("expected 3 firings in 300ms, got %d", fired)
	}
	if !tm.Tick(time.Second) {
		t.Fatal("long tick should fire")
	}
	// Surplus carries over but is bounded to a single extra period.
	if !tm.Tick(0) {
		t.Fatal("carried surplus should fire once")
	}
	if tm.Tick(0) {
		t.Fatal("surplus should be bounded to one period")
	}
}
