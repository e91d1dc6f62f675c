// Package tui provides the Bubble Tea integration for HueMatch.
// It handles the terminal UI loop, input mapping, and timer delivery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/huematch/internal/core"
)

// timerMsg is sent when a scheduled timer comes due.
type timerMsg struct {
	id uint64
}

// teaScheduler implements core.Scheduler on top of tea.Tick.
//
// Scheduling only queues a command; the model hands the queue to Bubble Tea
// via Drain at the end of every Update. Callbacks run inside Update, so they
// never race with key handling.
type teaScheduler struct {
	nextID  uint64
	timers  map[uint64]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	sched *teaScheduler
	id    uint64
	every time.Duration // zero for one-shot timers
	fn    func()
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: make(map[uint64]*teaTimer)}
}

// AfterFunc implements core.Scheduler.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) core.Timer {
	return s.add(d, 0, fn)
}

// Every implements core.Scheduler.
func (s *teaScheduler) Every(d time.Duration, fn func()) core.Timer {
	return s.add(d, d, fn)
}

func (s *teaScheduler) add(d, every time.Duration, fn func()) *teaTimer {
	s.nextID++
	t := &teaTimer{sched: s, id: s.nextID, every: every, fn: fn}
	s.timers[t.id] = t
	s.pending = append(s.pending, tickCmd(t.id, d))
	return t
}

// tickCmd returns a Bubble Tea command that delivers a timerMsg after d.
func tickCmd(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}

// fire runs the timer's callback. Messages for stopped timers are dropped.
func (s *teaScheduler) fire(id uint64) {
	t, ok := s.timers[id]
	if !ok {
		return
	}
	if t.every > 0 {
		// Re-arm first so the callback can still stop it
		s.pending = append(s.pending, tickCmd(id, t.every))
	} else {
		delete(s.timers, id)
	}
	t.fn()
}

// Drain returns the commands queued since the last call.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of live timers.
func (s *teaScheduler) Active() int {
	return len(s.timers)
}

// Stop implements core.Timer.
func (t *teaTimer) Stop() bool {
	if _, ok := t.sched.timers[t.id]; !ok {
		return false
	}
	delete(t.sched.timers, t.id)
	return true
}
