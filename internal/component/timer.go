package component

import "time"

// TimerMode selects what happens when a timer reaches its duration.
type TimerMode uint8

const (
	// Once timers stay finished until Reset.
	Once TimerMode = iota
	// Repeating timers wrap around and finish once per period.
	Repeating
)

// Timer counts elapsed time toward a duration. It is a plain value embedded in
// components; systems tick it through a pointer to their local copy.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	finished     bool
	justFinished bool
}

// NewTimer returns a fresh timer.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.justFinished = false
	if t.Mode == Once && t.finished {
		return t
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		if t.Mode == Repeating {
			t.finished = false
		}
		return t
	}
	t.justFinished = true
	t.finished = true
	if t.Mode == Repeating && t.Duration > 0 {
		t.Elapsed %= t.Duration
	} else {
		t.Elapsed = t.Duration
	}
	return t
}

// Finished reports whether the timer has reached its duration. For repeating
// timers this is only true on the tick that wrapped.
func (t Timer) Finished() bool { return t.finished }

// JustFinished reports whether the last Tick crossed the duration.
func (t Timer) JustFinished() bool { return t.justFinished }

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
}

// SetDuration changes the period without touching elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	t.Duration = d
}

// Remaining returns the time left until the timer finishes.
func (t Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Fraction returns elapsed/duration in [0, 1].
func (t Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return min(1, float64(t.Elapsed)/float64(t.Duration))
}
