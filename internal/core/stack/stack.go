// Package stack implements the stacked-panel navigation state machine: an
// ordered set of full-viewport panels, the active index, a single transition
// lock, and the layout each panel takes for any (old, new) index pair.
//
// A Stack is not safe for concurrent use. All calls, including Scheduler
// callbacks, are expected to come from one host event loop.
package stack

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/folio/internal/core/logging"
	"github.com/hay-kot/folio/pkg/kv"
)

// DefaultTransitionDuration is τ, the fixed length of every committed transition.
const DefaultTransitionDuration = 700 * time.Millisecond

// ErrNoPanels is returned by New when the stack would be empty.
var ErrNoPanels = errors.New("stack requires at least one panel")

// Panel is one navigable section. Content is owned by the caller.
type Panel struct {
	Index   int
	Title   string
	Content any
	Lazy    bool
}

// State is the navigation state shared by the stack and its gesture adapters.
type State struct {
	Active   int
	Previous int
	Locked   bool
	Intent   float64
}

// Activation describes one committed index change.
type Activation struct {
	Previous int
	Current  int
}

// Deps holds the external collaborators of a Stack. Nil fields fall back to no-ops,
// except Scheduler which is required.
type Deps struct {
	Renderer  Renderer
	Hydrator  Hydrator
	Scroller  Scroller
	Scheduler Scheduler
	Logger    *zerolog.Logger
}

// Options tunes a Stack.
type Options struct {
	TransitionDuration time.Duration
}

// Stack owns the ordered panels and the navigation state.
type Stack struct {
	panels    []Panel
	state     State
	phase     Phase
	duration  time.Duration
	renderer  Renderer
	hydrator  Hydrator
	scroller  Scroller
	scheduler Scheduler
	hydrated  *kv.Store[int, bool]
	observers []func(Activation)
	logger    zerolog.Logger
}

// New creates a stack positioned on panel 0. Panel indices are reassigned to
// match their position in panels.
func New(panels []Panel, deps Deps, opts Options) (*Stack, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	if deps.Scheduler == nil {
		return nil, errors.New("stack requires a scheduler")
	}

	owned := make([]Panel, len(panels))
	for i, p := range panels {
		p.Index = i
		owned[i] = p
	}

	s := &Stack{
		panels:    owned,
		phase:     Idle{},
		duration:  opts.TransitionDuration,
		renderer:  deps.Renderer,
		hydrator:  deps.Hydrator,
		scroller:  deps.Scroller,
		scheduler: deps.Scheduler,
		hydrated:  kv.New[int, bool](),
	}

	if s.duration <= 0 {
		s.duration = DefaultTransitionDuration
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.hydrator == nil {
		s.hydrator = nopHydrator{}
	}
	if s.scroller == nil {
		s.scroller = nopScroller{}
	}
	if deps.Logger != nil {
		s.logger = logging.With(*deps.Logger, "stack")
	} else {
		s.logger = logging.Component("stack")
	}

	return s, nil
}

// Sync renders the resting layout without locking and hydrates the active
// panel. Hosts call it once after construction and after a resize.
func (s *Stack) Sync() {
	for _, p := range s.panels {
		v := resting(s.state.Active, p.Index)
		s.renderer.Render(p, v)
	}
	s.hydrate(s.state.Active)
}

// Len returns the number of panels.
func (s *Stack) Len() int { return len(s.panels) }

// Panels returns a copy of the panels in order.
func (s *Stack) Panels() []Panel {
	out := make([]Panel, len(s.panels))
	copy(out, s.panels)
	return out
}

// Panel returns panel i.
func (s *Stack) Panel(i int) (Panel, bool) {
	if !s.inRange(i) {
		return Panel{}, false
	}
	return s.panels[i], true
}

// Current returns the active panel index.
func (s *Stack) Current() int { return s.state.Active }

// IsTransitioning reports whether a committed transition holds the lock.
func (s *Stack) IsTransitioning() bool { return s.state.Locked }

// State returns a snapshot of the navigation state.
func (s *Stack) State() State { return s.state }

// Phase returns the current navigation phase.
func (s *Stack) Phase() Phase { return s.phase }

// Duration returns τ.
func (s *Stack) Duration() time.Duration { return s.duration }

// Hydrated reports whether panel i has been hydrated.
func (s *Stack) Hydrated(i int) bool { return s.hydrated.Has(i) }

// Subscribe registers fn to be called after every committed index change.
func (s *Stack) Subscribe(fn func(Activation)) {
	s.observers = append(s.observers, fn)
}

// Intent returns the gesture intent accumulator.
func (s *Stack) Intent() float64 { return s.state.Intent }

// AddIntent grows the intent accumulator by delta and returns the new value.
// Negative deltas are ignored.
func (s *Stack) AddIntent(delta float64) float64 {
	if delta > 0 {
		s.state.Intent += delta
	}
	return s.state.Intent
}

// ResetIntent zeroes the intent accumulator.
func (s *Stack) ResetIntent() { s.state.Intent = 0 }

// ForwardTarget returns the panel a forward commit would activate.
// It may be out of range.
func (s *Stack) ForwardTarget() int { return s.state.Active + 1 }

// BackwardTarget returns the panel a backward commit would activate.
//
// From the last panel, when the forward journey skipped intermediate panels
// (Previous is more than one step behind), the target is Previous. Everywhere
// else it is Active-1. The result may be out of range.
func (s *Stack) BackwardTarget() int {
	active := s.state.Active
	if active == len(s.panels)-1 && active-s.state.Previous > 1 {
		return s.state.Previous
	}
	return active - 1
}

// TargetFor returns the commit target for a direction.
func (s *Stack) TargetFor(dir Direction) int {
	switch dir {
	case DirectionForward:
		return s.ForwardTarget()
	case DirectionBackward:
		return s.BackwardTarget()
	default:
		return s.state.Active
	}
}

// ActivateNext activates the panel after the current one.
func (s *Stack) ActivateNext() bool {
	return s.Activate(s.ForwardTarget())
}

// ActivatePrevious activates the backward target, honoring the skip-level rule.
func (s *Stack) ActivatePrevious() bool {
	return s.Activate(s.BackwardTarget())
}

// Activate starts a timed transition to target. Out-of-range targets and
// requests made while a transition is in flight are dropped and return false.
//
// Activate(Current()) is a snap-back: it re-asserts the resting layout,
// undoing any live preview, without changing the index.
func (s *Stack) Activate(target int) bool {
	if !s.inRange(target) {
		s.logger.Debug().Int("target", target).Int("panels", len(s.panels)).Msg("activation out of range")
		return false
	}

	old := s.state.Active
	next, ok := step(s.phase, commitEvent{from: old, target: target})
	if !ok {
		s.logger.Debug().Int("target", target).Msg("activation dropped: transition in flight")
		return false
	}

	s.phase = next
	s.state.Locked = true
	if target != old {
		s.state.Previous = old
	}

	for _, p := range s.panels {
		s.renderer.Render(p, Layout(old, target, p.Index))
	}

	s.logger.Debug().Int("from", old).Int("to", target).Dur("duration", s.duration).Msg("transition started")
	s.scheduler.AfterFunc(s.duration, func() { s.complete(target) })

	return true
}

// Preview renders a live, uncommitted move toward the neighbor in dir.
// Returns false when locked or when there is no panel in that direction.
func (s *Stack) Preview(dir Direction, progress float64) bool {
	if dir == DirectionNone {
		return false
	}

	target := s.TargetFor(dir)
	if !s.inRange(target) {
		return false
	}

	progress = clamp01(progress)
	next, ok := step(s.phase, previewEvent{direction: dir, target: target, progress: progress})
	if !ok {
		return false
	}
	s.phase = next

	active := s.state.Active
	for _, p := range s.panels {
		s.renderer.Render(p, PreviewLayout(active, target, p.Index, progress))
	}

	return true
}

// CancelPreview drops a live preview, snapping every panel back to its resting
// visual without taking the lock. It is a no-op outside the Previewing phase.
func (s *Stack) CancelPreview() bool {
	if _, ok := s.phase.(Previewing); !ok {
		return false
	}

	next, _ := step(s.phase, cancelEvent{})
	s.phase = next
	s.state.Intent = 0

	for _, p := range s.panels {
		v := resting(s.state.Active, p.Index)
		v.Animate = true
		s.renderer.Render(p, v)
	}

	return true
}

// complete is the transition-completion event delivered by the scheduler.
func (s *Stack) complete(target int) {
	next, ok := step(s.phase, completeEvent{})
	if !ok {
		return
	}

	prev := s.state.Active

	// A snap-back keeps the panel where the user scrolled it.
	if prev != target {
		s.scroller.ResetScroll(target)
	}
	s.state.Locked = false
	s.state.Intent = 0
	s.state.Active = target
	s.phase = next

	s.hydrate(target)

	s.logger.Debug().Int("from", prev).Int("to", target).Msg("transition complete")

	if prev == target {
		return
	}

	a := Activation{Previous: prev, Current: target}
	for _, fn := range s.observers {
		fn(a)
	}
}

func (s *Stack) hydrate(i int) {
	if !s.panels[i].Lazy {
		return
	}
	if !s.hydrated.SetIfAbsent(i, true) {
		return
	}
	s.hydrator.Hydrate(i)
}

func (s *Stack) inRange(i int) bool {
	return i >= 0 && i < len(s.panels)
}
