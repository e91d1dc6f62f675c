// Package coretest provides test doubles for the core contracts.
package coretest

import (
	"sort"
	"time"

	"github.com/vovakirdan/huematch/internal/core"
)

// ManualScheduler is a core.Scheduler driven by a virtual clock.
// Nothing fires until Advance is called; callbacks then run on the caller's
// goroutine in deadline order, ties broken by scheduling order.
type ManualScheduler struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	id      uint64
	at      time.Duration
	every   time.Duration
	fn      func()
	stopped bool
}

// Stop implements core.Timer.
func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler creates a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements core.Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) core.Timer {
	return s.add(d, 0, fn)
}

// Every implements core.Scheduler.
func (s *ManualScheduler) Every(d time.Duration, fn func()) core.Timer {
	if d <= 0 {
		panic("coretest: Every requires a positive interval")
	}
	return s.add(d, d, fn)
}

func (s *ManualScheduler) add(d, every time.Duration, fn func()) *manualTimer {
	s.seq++
	t := &manualTimer{
		id:    s.seq,
		at:    s.now + d,
		every: every,
		fn:    fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by d, firing every callback that becomes due.
// Callbacks scheduled while advancing fire too if their deadline falls inside
// the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.at
		if t.every > 0 {
			t.at += t.every
		} else {
			t.stopped = true
		}
		t.fn()
	}
	s.now = target
	s.compact()
}

// nextDue returns the earliest live timer due at or before target.
func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range s.timers {
		if t.stopped || t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.id < next.id) {
			next = t
		}
	}
	return next
}

func (s *ManualScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
}

// Active returns the number of timers that can still fire.
func (s *ManualScheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// ActiveRepeating returns the number of live repeating timers.
func (s *ManualScheduler) ActiveRepeating() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && t.every > 0 {
			n++
		}
	}
	return n
}

// Deadlines returns the pending deadlines in firing order.
func (s *ManualScheduler) Deadlines() []time.Duration {
	var out []time.Duration
	for _, t := range s.timers {
		if !t.stopped {
			out = append(out, t.at)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
