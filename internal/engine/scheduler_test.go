package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFiresRepeatedly(t *testing.T) {
	var fires atomic.Int32
	s := NewScheduler()
	defer s.Stop()

	s.Start(10*time.Millisecond, func() { fires.Add(1) })

	assert.Eventually(t, func() bool { return fires.Load() >= 3 },
		time.Second, 5*time.Millisecond)
}

func TestSchedulerStop(t *testing.T) {
	var fires atomic.Int32
	s := NewScheduler()

	s.Start(10*time.Millisecond, func() { fires.Add(1) })
	assert.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())

	n := fires.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, fires.Load(), "no fires after Stop")
}

func TestSchedulerStopIdempotent(t *testing.T) {
	s := NewScheduler()
	s.Stop()
	s.Stop()

	s.Start(time.Hour, func() {})
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestSchedulerRestartReplacesTimer(t *testing.T) {
	var first, second atomic.Int32
	s := NewScheduler()
	defer s.Stop()

	s.Start(10*time.Millisecond, func() { first.Add(1) })
	s.Start(10*time.Millisecond, func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() >= 2 },
		time.Second, 5*time.Millisecond)

	// The first timer was cancelled before it could tick more than once at
	// most (the restart raced a pending tick); it must not keep firing.
	n := first.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, first.Load())
}
