package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/folio/internal/core/stack"
)

// timerFiredMsg is delivered when a scheduler timer's delay has elapsed.
type timerFiredMsg struct {
	id uint64
}

// teaScheduler implements stack.Scheduler on top of tea.Tick so every
// callback runs inside Update, serialized with input handling.
type teaScheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[uint64]func())}
}

// AfterFunc registers fn and queues a tick command for it. The command is
// handed to the runtime by the next Drain.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) stack.Timer {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return &teaTimer{s: s, id: id}
}

// Fire runs the callback for id if it is still pending.
func (s *teaScheduler) Fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (s *teaScheduler) Pending() int {
	return len(s.pending)
}

// Drain returns the tick commands queued since the last call.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

type teaTimer struct {
	s  *teaScheduler
	id uint64
}

// Stop cancels the timer. A stopped timer's tick still arrives but is ignored.
func (t *teaTimer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}
