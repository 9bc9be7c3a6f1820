// Package stacktest provides deterministic fakes for driving a stack.Stack in tests:
// a manual clock scheduler, a recording renderer, a static scroller, and a
// hydrator that counts calls.
package stacktest

import (
	"sort"
	"strconv"
	"time"

	"github.com/hay-kot/folio/internal/core/stack"
)

// Scheduler is a manual clock. Callbacks fire only when Advance moves the
// clock past their deadline.
type Scheduler struct {
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	s       *Scheduler
	seq     int
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc implements stack.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) stack.Timer {
	s.seq++
	t := &timer{s: s, seq: s.seq, at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Now returns the elapsed fake time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due callbacks in deadline
// order. Callbacks scheduled while advancing fire too if they fall due.
func (s *Scheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		t := s.nextDue(end)
		if t == nil {
			break
		}
		s.now = t.at
		t.fired = true
		t.fn()
	}
	s.now = end
	s.compact()
}

func (s *Scheduler) nextDue(end time.Duration) *timer {
	var due []*timer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= end {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	return due[0]
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.timers = live
}

// Call is one Renderer invocation.
type Call struct {
	Panel  int
	Visual stack.Visual
}

// Renderer records every Render call and keeps the latest visual per panel.
type Renderer struct {
	Calls  []Call
	latest map[int]stack.Visual
}

// NewRenderer creates an empty recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{latest: make(map[int]stack.Visual)}
}

// Render implements stack.Renderer.
func (r *Renderer) Render(p stack.Panel, v stack.Visual) {
	r.Calls = append(r.Calls, Call{Panel: p.Index, Visual: v})
	r.latest[p.Index] = v
}

// Latest returns the most recent visual rendered for panel i.
func (r *Renderer) Latest(i int) (stack.Visual, bool) {
	v, ok := r.latest[i]
	return v, ok
}

// CommittedPasses counts full committed layout passes, identified by the
// non-preview render of panel 0.
func (r *Renderer) CommittedPasses() int {
	n := 0
	for _, c := range r.Calls {
		if c.Panel == 0 && !c.Visual.Preview {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps the latest visuals.
func (r *Renderer) Reset() {
	r.Calls = nil
}

// Scroller is a map-backed stack.Scroller.
type Scroller struct {
	Offsets map[int]float64
	Extents map[int]float64
	Resets  []int
}

// NewScroller creates a scroller where every panel sits at its top with no extent.
func NewScroller() *Scroller {
	return &Scroller{
		Offsets: make(map[int]float64),
		Extents: make(map[int]float64),
	}
}

// ScrollOffset implements stack.Scroller.
func (s *Scroller) ScrollOffset(i int) float64 { return s.Offsets[i] }

// ScrollExtent implements stack.Scroller.
func (s *Scroller) ScrollExtent(i int) float64 { return s.Extents[i] }

// ResetScroll implements stack.Scroller.
func (s *Scroller) ResetScroll(i int) {
	s.Offsets[i] = 0
	s.Resets = append(s.Resets, i)
}

// Hydrator counts hydration calls per panel.
type Hydrator struct {
	Calls map[int]int
}

// NewHydrator creates an empty counting hydrator.
func NewHydrator() *Hydrator {
	return &Hydrator{Calls: make(map[int]int)}
}

// Hydrate implements stack.Hydrator.
func (h *Hydrator) Hydrate(i int) { h.Calls[i]++ }

// Panels builds n panels titled "panel-<i>". Indices listed in lazy are marked Lazy.
func Panels(n int, lazy ...int) []stack.Panel {
	isLazy := make(map[int]bool, len(lazy))
	for _, i := range lazy {
		isLazy[i] = true
	}

	panels := make([]stack.Panel, n)
	for i := range panels {
		panels[i] = stack.Panel{
			Index: i,
			Title: "panel-" + strconv.Itoa(i),
			Lazy:  isLazy[i],
		}
	}
	return panels
}

// Harness bundles a stack with its fakes.
type Harness struct {
	Stack     *stack.Stack
	Scheduler *Scheduler
	Renderer  *Renderer
	Scroller  *Scroller
	Hydrator  *Hydrator
}

// New builds a Harness with n panels and τ = stack.DefaultTransitionDuration.
// It panics on construction errors, which only happen for n == 0.
func New(n int, lazy ...int) *Harness {
	h := &Harness{
		Scheduler: NewScheduler(),
		Renderer:  NewRenderer(),
		Scroller:  NewScroller(),
		Hydrator:  NewHydrator(),
	}

	s, err := stack.New(Panels(n, lazy...), stack.Deps{
		Renderer:  h.Renderer,
		Hydrator:  h.Hydrator,
		Scroller:  h.Scroller,
		Scheduler: h.Scheduler,
	}, stack.Options{})
	if err != nil {
		panic(err)
	}

	h.Stack = s
	return h
}

// Settle advances the clock by τ so any in-flight transition completes.
func (h *Harness) Settle() {
	h.Scheduler.Advance(h.Stack.Duration())
}

// Jump activates target and waits for the transition to complete.
func (h *Harness) Jump(target int) bool {
	ok := h.Stack.Activate(target)
	h.Settle()
	return ok
}
