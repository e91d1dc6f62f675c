package coretest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFuncFiresOnce(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	s.AfterFunc(time.Second, func() { calls++ })

	s.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, calls)

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)

	s.Advance(10 * time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Active())
}

func TestEveryRepeatsUntilStopped(t *testing.T) {
	s := NewManualScheduler()
	var at []time.Duration
	timer := s.Every(time.Second, func() { at = append(at, s.Now()) })

	s.Advance(3 * time.Second)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, at)
	assert.Equal(t, 1, s.ActiveRepeating())

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	s.Advance(5 * time.Second)
	assert.Len(t, at, 3)
	assert.Equal(t, 0, s.ActiveRepeating())
}

func TestStopFromInsideCallback(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	var timer interface{ Stop() bool }
	timer = s.Every(time.Second, func() {
		calls++
		if calls == 2 {
			timer.Stop()
		}
	})

	s.Advance(10 * time.Second)
	assert.Equal(t, 2, calls)
}

func TestTiesFireInSchedulingOrder(t *testing.T) {
	s := NewManualScheduler()
	var order []string
	s.Every(time.Second, func() { order = append(order, "tick") })
	s.AfterFunc(time.Second, func() { order = append(order, "once") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"tick", "once"}, order)
}

func TestCallbacksScheduledWhileAdvancing(t *testing.T) {
	s := NewManualScheduler()
	var fired []time.Duration
	s.AfterFunc(time.Second, func() {
		s.AfterFunc(time.Second, func() { fired = append(fired, s.Now()) })
	})

	s.Advance(5 * time.Second)
	assert.Equal(t, []time.Duration{2 * time.Second}, fired)
	assert.Equal(t, 5*time.Second, s.Now())
}

func TestDeadlines(t *testing.T) {
	s := NewManualScheduler()
	s.AfterFunc(3*time.Second, func() {})
	s.Every(time.Second, func() {})

	assert.Equal(t, []time.Duration{time.Second, 3 * time.Second}, s.Deadlines())
}
