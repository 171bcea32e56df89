package render

import (
	"image/color"
	"testing"

	"charon/internal/autotile"
	"charon/internal/core"
	"charon/internal/flow"
	"charon/internal/tilemap"
)

func TestSpokesInvertClassify(t *testing.T) {
	for mask := uint8(1); mask < 16; mask++ {
		shape, o := autotile.Classify(mask)
		if got := Spokes(shape, o); got != mask {
			t.Fatalf("mask %04b -> %v/%d -> %04b", mask, shape, o, got)
		}
	}
	if Spokes(tilemap.ShapeNone, 0) != 0 {
		t.Fatal("isolated tile has no spokes")
	}
}

func TestClassify(t *testing.T) {
	m := tilemap.New(4, 3)
	m.SetActive(core.Rect{X: 1, Y: 0, W: 3, H: 3})
	m.PlaceStart(core.Point{X: 1, Y: 1}, tilemap.StartState{})
	m.PlaceEnd(core.Point{X: 3, Y: 1})
	m.SetPath(core.Point{X: 2, Y: 1})

	got := Classify(nil, m)
	want := map[core.Point]uint8{
		{X: 0, Y: 1}: ClassOutside,
		{X: 1, Y: 0}: ClassEmpty,
		{X: 1, Y: 1}: ClassStart,
		{X: 2, Y: 1}: ClassPath,
		{X: 3, Y: 1}: ClassEnd,
	}
	for p, c := range want {
		if got[m.Index(p)] != c {
			t.Fatalf("class at %v = %d, want %d", p, got[m.Index(p)], c)
		}
	}
}

func TestHeatRamp(t *testing.T) {
	cases := []struct {
		d    float64
		want color.RGBA
	}{
		{0, color.RGBA{G: 255, A: 255}},
		{15, color.RGBA{R: 128, G: 128, A: 255}},
		{30, color.RGBA{R: 255, A: 255}},
		{90, color.RGBA{R: 255, A: 255}},
	}
	for _, tc := range cases {
		if got := Heat(tc.d, HeatSpan); got != tc.want {
			t.Fatalf("Heat(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestFillHeatColoursReachedPaths(t *testing.T) {
	m := tilemap.New(3, 1)
	m.PlaceEnd(core.Point{X: 0, Y: 0})
	m.SetPath(core.Point{X: 1, Y: 0})
	m.SetPath(core.Point{X: 2, Y: 0})
	flow.NewSolver().Solve(m)

	classes := Classify(nil, m)
	buf := make([]byte, 4*m.Len())
	FillHeat(buf, m, classes, DefaultPalette)

	end := DefaultPalette[ClassEnd]
	if buf[0] != end.R || buf[1] != end.G {
		t.Fatal("end cell should keep its palette colour")
	}
	near, far := Heat(1, HeatSpan), Heat(2, HeatSpan)
	if buf[4] != near.R || buf[5] != near.G || buf[8] != far.R || buf[9] != far.G {
		t.Fatalf("heat pixels = %v", buf[4:12])
	}
	if d, ok := NearestEnd(m, core.Point{X: 2, Y: 0}); !ok || d != 2 {
		t.Fatalf("NearestEnd = %v, %v", d, ok)
	}
}
