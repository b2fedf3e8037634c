// internal/utils/timer.go
package utils

// TimerMode определяет, что происходит с таймером после срабатывания.
type TimerMode int

const (
	// Once stops at its duration and stays finished until Reset.
	Once TimerMode = iota
	// Repeating wraps around and keeps the overflow.
	Repeating
)

// Timer is a monotonic accumulator advanced explicitly by its owner. There is
// no cancellation: a timer is only ever reset or paused.
type Timer struct {
	Duration float64
	Mode     TimerMode

	elapsed       float64
	finished      bool
	paused        bool
	timesFinished int
}

// NewTimer creates a running timer with the given duration in seconds.
func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{Duration: seconds, Mode: mode}
}

// Tick advances the timer by deltaTime seconds.
func (t *Timer) Tick(deltaTime float64) {
	if t.paused {
		t.timesFinished = 0
		if t.Mode == Repeating {
			t.finished = false
		}
		return
	}
	if t.Mode == Once && t.finished {
		t.timesFinished = 0
		return
	}

	t.elapsed += deltaTime
	t.finished = t.elapsed >= t.Duration
	if !t.finished {
		t.timesFinished = 0
		return
	}

	if t.Mode == Repeating {
		if t.Duration <= 0 {
			t.timesFinished = 1
			t.elapsed = 0
			return
		}
		t.timesFinished = int(t.elapsed / t.Duration)
		t.elapsed -= float64(t.timesFinished) * t.Duration
		return
	}
	t.timesFinished = 1
	t.elapsed = t.Duration
}

// JustFinished reports whether the last Tick completed at least one interval.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick is the number of intervals completed by the last Tick.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Finished reports whether the timer has reached its duration.
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the accumulated time of the current interval.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining returns the time left in the current interval.
func (t *Timer) Remaining() float64 {
	if r := t.Duration - t.elapsed; r > 0 {
		return r
	}
	return 0
}

func (t *Timer) Pause() { t.paused = true }
func (t *Timer) Unpause() { t.paused = false }
func (t *Timer) Paused() bool { return t.paused }

// Reset clears elapsed time and the finished state. The pause state is kept.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
