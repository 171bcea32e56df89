package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestRangeAndJitterBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.Range(2, -1); v < -1 || v >= 2 {
			t.Fatalf("Range out of bounds: %f", v)
		}
		if v := r.Jitter(10); v < -5 || v >= 5 {
			t.Fatalf("Jitter out of bounds: %f", v)
		}
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
}
