package core

import "time"

// Timer is a repeating countdown driven by explicit frame deltas. It fires
// once each time the accumulated time crosses its duration.
type Timer struct {
	duration    time.Duration
	accumulator time.Duration
}

// NewTimer constructs a repeating timer. Non-positive durations fire every tick.
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// Duration returns the current period.
func (t *Timer) Duration() time.Duration { return t.duration }

// SetDuration changes the period without resetting accumulated time.
func (t *Timer) SetDuration(d time.Duration) { t.duration = d }

// Reset clears accumulated time.
func (t *Timer) Reset() { t.accumulator = 0 }

// Tick advances the timer and reports whether the period elapsed during this
// tick. A long tick fires once; the surplus carries over.
func (t *Timer) Tick(dt time.Duration) bool {
	t.accumulator += dt
	if t.duration <= 0 {
		t.accumulator = 0
		return true
	}
	if t.accumulator >= t.duration {
		t.accumulator -= t.duration
		if t.accumulator > t.duration {
			t.accumulator = t.duration
		}
		return true
	}
	return false
}

// Seconds converts float seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
