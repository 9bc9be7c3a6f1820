// Package gesture turns raw pointer drags and wheel ticks into navigation
// intent for a stack.Stack: a live preview while the gesture builds up, and a
// commit or snap-back once it resolves.
package gesture

import (
	"math"

	"github.com/hay-kot/folio/internal/core/stack"
)

const (
	// DefaultDragThreshold is the displacement a drag must exceed to commit.
	DefaultDragThreshold = 150.0
	// DefaultPreviewScale is the displacement that maps to full preview progress.
	DefaultPreviewScale = 300.0
	// DefaultWheelThreshold is the accumulated wheel delta a scroll must exceed to commit.
	DefaultWheelThreshold = 300.0
)

// Signal is what both adapters report for every input they handle.
type Signal struct {
	Direction stack.Direction
	Progress  float64
	Committed bool
}

// Navigator is the part of stack.Stack the adapters drive.
type Navigator interface {
	Current() int
	Len() int
	IsTransitioning() bool
	TargetFor(dir stack.Direction) int
	Activate(target int) bool
	Preview(dir stack.Direction, progress float64) bool
	CancelPreview() bool
	Intent() float64
	AddIntent(delta float64) float64
	ResetIntent()
}

var _ Navigator = (*stack.Stack)(nil)

// commit activates the target for dir, snapping back to the resting layout
// when that target does not exist.
func commit(nav Navigator, dir stack.Direction) bool {
	if nav.Activate(nav.TargetFor(dir)) {
		return true
	}
	nav.Activate(nav.Current())
	return false
}

func hasTarget(nav Navigator, dir stack.Direction) bool {
	t := nav.TargetFor(dir)
	return t >= 0 && t < nav.Len()
}

func progress(amount, scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return math.Min(math.Abs(amount)/scale, 1)
}
