package entity

import "time"

// Timer is a one-shot countdown advanced by elapsed wall time
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	done     bool
}

// NewTimer creates a timer that finishes after d
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer and returns true only on the tick it finishes.
// A zero duration timer finishes on its first tick.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.done {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.done = true
		return true
	}
	return false
}

// Finished returns true once the timer has run out
func (t *Timer) Finished() bool {
	return t.done
}

// Remaining returns the time left, never negative
func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

// DashCooldown marks dash as unavailable until its timer finishes
type DashCooldown struct {
	Timer Timer
}
