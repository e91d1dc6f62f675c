package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeaSchedulerQueuesCommands(t *testing.T) {
	s := newTeaScheduler()
	assert.Nil(t, s.Drain(), "nothing scheduled yet")

	s.AfterFunc(time.Second, func() {})
	s.Every(time.Second, func() {})

	assert.NotNil(t, s.Drain())
	assert.Nil(t, s.Drain(), "drain empties the queue")
	assert.Equal(t, 2, s.Active())
}

func TestTeaSchedulerOneShot(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	timer := s.AfterFunc(time.Second, func() { calls++ })
	s.Drain()

	s.fire(1)
	s.fire(1)
	assert.Equal(t, 1, calls, "one-shot fires once")
	assert.Nil(t, s.Drain(), "one-shot does not re-arm")
	assert.False(t, timer.Stop(), "stopping a fired timer reports false")
}

func TestTeaSchedulerRepeatingRearms(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	timer := s.Every(time.Second, func() { calls++ })
	s.Drain()

	for i := 0; i < 3; i++ {
		s.fire(1)
		require.NotNil(t, s.Drain(), "each tick re-arms")
	}
	assert.Equal(t, 3, calls)

	assert.True(t, timer.Stop())
	s.fire(1)
	assert.Equal(t, 3, calls, "ticks after Stop are dropped")
	assert.Equal(t, 0, s.Active())
}

func TestTeaSchedulerStopFromCallback(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	var timer interface{ Stop() bool }
	timer = s.Every(time.Second, func() {
		calls++
		timer.Stop()
	})
	s.Drain()

	s.fire(1)
	s.Drain()
	s.fire(1)
	assert.Equal(t, 1, calls)
}

func TestTeaSchedulerUnknownID(t *testing.T) {
	s := newTeaScheduler()
	assert.NotPanics(t, func() { s.fire(42) })
}
