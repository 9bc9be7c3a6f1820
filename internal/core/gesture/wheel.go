package gesture

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/folio/internal/core/logging"
	"github.com/hay-kot/folio/internal/core/stack"
)

// DefaultWheelDebounce is how long the wheel must be quiet before a partial
// preview snaps back.
const DefaultWheelDebounce = 150 * time.Millisecond

// WheelConfig tunes the wheel adapter. Zero values use the defaults.
type WheelConfig struct {
	Threshold float64       // commit when the accumulated delta exceeds this
	Debounce  time.Duration // quiet period before an uncommitted preview snaps back
}

func (c WheelConfig) withDefaults() WheelConfig {
	if c.Threshold <= 0 {
		c.Threshold = DefaultWheelThreshold
	}
	if c.Debounce <= 0 {
		c.Debounce = DefaultWheelDebounce
	}
	return c
}

// DragState reports whether a pointer drag currently owns the gesture.
type DragState interface {
	Dragging() bool
}

// Wheel accumulates discrete wheel ticks into navigation intent.
type Wheel struct {
	nav       Navigator
	scroller  stack.Scroller
	drag      DragState
	scheduler stack.Scheduler
	cfg       WheelConfig
	logger    zerolog.Logger

	lastDir stack.Direction
	timer   stack.Timer
}

// NewWheel creates a wheel adapter. drag may be nil when no drag adapter exists.
func NewWheel(nav Navigator, scroller stack.Scroller, drag DragState, scheduler stack.Scheduler, cfg WheelConfig) *Wheel {
	return &Wheel{
		nav:       nav,
		scroller:  scroller,
		drag:      drag,
		scheduler: scheduler,
		cfg:       cfg.withDefaults(),
		logger:    logging.Component("gesture"),
	}
}

// Tick handles one wheel event. Positive deltaY scrolls forward. It returns
// false when the tick was not consumed and belongs to the panel's own
// scrolling instead.
func (w *Wheel) Tick(deltaY float64) (Signal, bool) {
	if deltaY == 0 {
		return Signal{}, false
	}
	if (w.drag != nil && w.drag.Dragging()) || w.nav.IsTransitioning() {
		return Signal{}, false
	}

	dir := stack.DirectionForward
	if deltaY < 0 {
		dir = stack.DirectionBackward
	}

	if w.lastDir != stack.DirectionNone && dir != w.lastDir {
		w.nav.ResetIntent()
	}
	w.lastDir = dir

	if !w.eligible(dir) {
		w.nav.ResetIntent()
		w.nav.CancelPreview()
		return Signal{}, false
	}

	intent := w.nav.AddIntent(math.Abs(deltaY))
	w.restartDebounce()

	if intent > w.cfg.Threshold {
		w.nav.ResetIntent()
		ok := commit(w.nav, dir)
		w.logger.Debug().
			Float64("intent", intent).
			Str("direction", dir.String()).
			Bool("committed", ok).
			Msg("wheel crossed threshold")
		return Signal{Direction: dir, Progress: 1, Committed: ok}, true
	}

	p := progress(intent, w.cfg.Threshold)
	w.nav.Preview(dir, p)

	return Signal{Direction: dir, Progress: p}, true
}

// eligible reports whether a tick in dir may navigate rather than scroll.
// Forward needs the active panel scrolled to its bottom (the base panel always
// qualifies); backward needs it at its top.
func (w *Wheel) eligible(dir stack.Direction) bool {
	if !hasTarget(w.nav, dir) {
		return false
	}

	active := w.nav.Current()
	switch dir {
	case stack.DirectionForward:
		return active == 0 || stack.AtBottom(w.scroller, active)
	case stack.DirectionBackward:
		return stack.AtTop(w.scroller, active)
	default:
		return false
	}
}

func (w *Wheel) restartDebounce() {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = w.scheduler.AfterFunc(w.cfg.Debounce, w.settle)
}

// settle runs when the wheel has been quiet for the debounce period. A
// partial preview left behind is snapped back.
func (w *Wheel) settle() {
	w.timer = nil
	w.lastDir = stack.DirectionNone

	if w.nav.Intent() <= 0 || w.nav.IsTransitioning() {
		return
	}

	w.logger.Debug().Float64("intent", w.nav.Intent()).Msg("wheel idle, snapping back")
	w.nav.Activate(w.nav.Current())
	w.nav.ResetIntent()
}
