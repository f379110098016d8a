package entity

// TimerMode selects whether a timer fires once or keeps wrapping
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed seconds toward a duration.
// It is advanced once per frame with Tick.
type Timer struct {
	Duration float64 // seconds
	Elapsed  float64 // seconds
	Mode     TimerMode

	finished     bool
	justFinished bool
}

// NewTimer creates a timer for the given duration in seconds
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by dt seconds.
// A repeating timer wraps and reports Finished for the tick on which it wrapped.
// A one-shot timer stays finished once it reaches its duration.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if t.Mode == TimerOnce && t.finished {
		return
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return
	}

	t.justFinished = true
	if t.Mode == TimerRepeating && t.Duration > 0 {
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
		}
		return
	}

	t.Elapsed = t.Duration
	t.finished = true
}

// Finished reports whether the timer fired.
// For repeating timers this is only true on the tick that wrapped.
func (t *Timer) Finished() bool {
	if t.Mode == TimerRepeating {
		return t.justFinished
	}
	return t.finished
}

// Fraction returns elapsed/duration in [0, 1].
// A zero-length timer reports 1.
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := t.Elapsed / t.Duration
	if f > 1 {
		return 1
	}
	return f
}
