package gesture

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/hay-kot/folio/internal/core/logging"
	"github.com/hay-kot/folio/internal/core/stack"
)

// DragConfig tunes the drag adapter. Zero values use the defaults.
type DragConfig struct {
	Threshold    float64 // commit when |delta| exceeds this
	PreviewScale float64 // |delta| that maps to full preview progress
}

func (c DragConfig) withDefaults() DragConfig {
	if c.Threshold <= 0 {
		c.Threshold = DefaultDragThreshold
	}
	if c.PreviewScale <= 0 {
		c.PreviewScale = DefaultPreviewScale
	}
	return c
}

// Drag tracks one continuous pointer gesture at a time.
//
// Positions grow downward, so a negative delta (pointer moving up) moves
// forward and a positive delta moves backward.
type Drag struct {
	nav      Navigator
	scroller stack.Scroller
	cfg      DragConfig
	logger   zerolog.Logger

	dragging bool
	start    float64
	delta    float64
}

// NewDrag creates a drag adapter for nav.
func NewDrag(nav Navigator, scroller stack.Scroller, cfg DragConfig) *Drag {
	return &Drag{
		nav:      nav,
		scroller: scroller,
		cfg:      cfg.withDefaults(),
		logger:   logging.Component("gesture"),
	}
}

// Dragging reports whether a drag is armed.
func (d *Drag) Dragging() bool { return d.dragging }

// Delta returns the current displacement from the anchor.
func (d *Drag) Delta() float64 { return d.delta }

// Start arms a drag at pos. It is refused while a transition is in flight.
func (d *Drag) Start(pos float64) bool {
	if d.nav.IsTransitioning() {
		return false
	}
	d.dragging = true
	d.start = pos
	d.delta = 0
	return true
}

// Move updates the drag and previews the move it implies.
//
// A backward move on a panel that is not scrolled to its top belongs to the
// panel's own scrolling. The anchor follows the pointer so the deferred
// distance never counts toward navigation.
func (d *Drag) Move(pos float64) Signal {
	if !d.dragging || d.nav.IsTransitioning() {
		return Signal{}
	}

	delta := pos - d.start
	if delta > 0 && !stack.AtTop(d.scroller, d.nav.Current()) {
		d.start = pos
		d.delta = 0
		return Signal{}
	}

	d.delta = delta
	dir := direction(delta)
	if dir == stack.DirectionNone {
		return Signal{}
	}

	p := progress(delta, d.cfg.PreviewScale)
	d.nav.Preview(dir, p)

	return Signal{Direction: dir, Progress: p}
}

// End releases the drag. A displacement beyond the threshold commits in its
// direction; anything shorter snaps back to the resting layout.
func (d *Drag) End() Signal {
	if !d.dragging {
		return Signal{}
	}

	delta := d.delta
	d.dragging = false
	d.delta = 0

	dir := direction(delta)
	if math.Abs(delta) > d.cfg.Threshold {
		ok := commit(d.nav, dir)
		d.logger.Debug().
			Float64("delta", delta).
			Str("direction", dir.String()).
			Bool("committed", ok).
			Msg("drag released past threshold")
		return Signal{Direction: dir, Progress: 1, Committed: ok}
	}

	d.nav.Activate(d.nav.Current())
	return Signal{Direction: dir, Progress: progress(delta, d.cfg.PreviewScale)}
}

// Cancel drops an armed drag without committing or snapping back.
func (d *Drag) Cancel() {
	d.dragging = false
	d.delta = 0
	d.nav.CancelPreview()
}

func direction(delta float64) stack.Direction {
	switch {
	case delta < 0:
		return stack.DirectionForward
	case delta > 0:
		return stack.DirectionBackward
	default:
		return stack.DirectionNone
	}
}
