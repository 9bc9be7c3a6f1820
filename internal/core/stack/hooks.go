package stack

import "time"

// Renderer applies a visual treatment to a panel. It is called once per panel
// for every committed layout and repeatedly during live previews.
type Renderer interface {
	Render(p Panel, v Visual)
}

// Hydrator fills in lazy panel content. The stack calls it at most once per panel.
type Hydrator interface {
	Hydrate(index int)
}

// Scroller exposes the in-panel scroll position owned by the host.
type Scroller interface {
	// ScrollOffset returns how far panel i is scrolled from its top.
	ScrollOffset(i int) float64
	// ScrollExtent returns the largest offset panel i can scroll to.
	ScrollExtent(i int) float64
	// ResetScroll moves panel i back to its top.
	ResetScroll(i int)
}

// Scheduler runs fn after d on the host's event loop. Callbacks must never run
// concurrently with other calls into the Stack.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending Scheduler callback.
type Timer interface {
	// Stop cancels the callback. Returns false if it already ran or was stopped.
	Stop() bool
}

// AtTop reports whether panel i is scrolled to its top.
func AtTop(s Scroller, i int) bool {
	return s.ScrollOffset(i) <= 0
}

// AtBottom reports whether panel i is scrolled to its bottom.
func AtBottom(s Scroller, i int) bool {
	return s.ScrollOffset(i) >= s.ScrollExtent(i)
}

type nopRenderer struct{}

func (nopRenderer) Render(Panel, Visual) {}

type nopHydrator struct{}

func (nopHydrator) Hydrate(int) {}

type nopScroller struct{}

func (nopScroller) ScrollOffset(int) float64 { return 0 }
func (nopScroller) ScrollExtent(int) float64 { return 0 }
func (nopScroller) ResetScroll(int)          {}
