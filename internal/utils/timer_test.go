package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeatingTimerWrapsAndReportsOnce(t *testing.T) {
	timer := NewTimer(1.5, Repeating)

	timer.Tick(1.0)
	assert.False(t, timer.JustFinished())

	timer.Tick(1.0)
	assert.True(t, timer.JustFinished())
	assert.Equal(t, 1, timer.TimesFinishedThisTick())
	assert.InDelta(t, 0.5, timer.Elapsed(), 1e-9)

	timer.Tick(0.5)
	assert.False(t, timer.JustFinished())
}

func TestRepeatingTimerCountsMultipleIntervals(t *testing.T) {
	timer := NewTimer(0.5, Repeating)
	timer.Tick(1.75)
	assert.Equal(t, 3, timer.TimesFinishedThisTick())
	assert.InDelta(t, 0.25, timer.Elapsed(), 1e-9)
}

func TestOnceTimerFinishesOnlyOnce(t *testing.T) {
	timer := NewTimer(2, Once)
	timer.Tick(2)
	assert.True(t, timer.JustFinished())
	assert.True(t, timer.Finished())

	timer.Tick(1)
	assert.False(t, timer.JustFinished())
	assert.True(t, timer.Finished())
	assert.Equal(t, 0.0, timer.Remaining())
}

func TestPausedTimerDoesNotAdvance(t *testing.T) {
	timer := NewTimer(1, Once)
	timer.Pause()
	timer.Tick(5)
	assert.False(t, timer.JustFinished())
	assert.Equal(t, 0.0, timer.Elapsed())

	timer.Unpause()
	timer.Tick(1)
	assert.True(t, timer.JustFinished())
}

func TestResetKeepsPauseState(t *testing.T) {
	timer := NewTimer(1, Once)
	timer.Tick(1)
	timer.Pause()
	timer.Reset()

	assert.True(t, timer.Paused())
	assert.False(t, timer.Finished())
	assert.False(t, timer.JustFinished())
	assert.Equal(t, 1.0, timer.Remaining())
}
