package tui

import (
	"math"
	"time"

	"github.com/hay-kot/folio/internal/core/stack"
)

// panelAnimation tweens one panel from one visual to another over a fixed
// number of frames.
type panelAnimation struct {
	From       stack.Visual
	To         stack.Visual
	Current    stack.Visual
	TicksLeft  int
	TicksTotal int
}

// AnimationStore implements stack.Renderer. It records the visual each panel
// should show and advances committed transitions one frame per Tick.
type AnimationStore struct {
	panels   map[int]*panelAnimation
	ticksMax int
	ticking  bool
}

// NewAnimationStore creates a store whose transitions last duration when
// ticked every frame.
func NewAnimationStore(duration, frame time.Duration) *AnimationStore {
	ticks := 1
	if frame > 0 {
		ticks = max(int(math.Ceil(float64(duration)/float64(frame))), 1)
	}
	return &AnimationStore{
		panels:   make(map[int]*panelAnimation),
		ticksMax: ticks,
	}
}

// Render receives a visual from the stack. Animated visuals start a tween
// from wherever the panel currently is; the rest apply immediately.
func (s *AnimationStore) Render(p stack.Panel, v stack.Visual) {
	cur := s.Visual(p.Index)
	if !v.Animate {
		s.panels[p.Index] = &panelAnimation{From: v, To: v, Current: v}
		return
	}

	s.panels[p.Index] = &panelAnimation{
		From:       cur,
		To:         v,
		Current:    cur,
		TicksLeft:  s.ticksMax,
		TicksTotal: s.ticksMax,
	}
}

// Visual returns the visual panel i shows on the current frame. Panels that
// were never rendered sit below the viewport.
func (s *AnimationStore) Visual(i int) stack.Visual {
	a, ok := s.panels[i]
	if !ok {
		return stack.Visual{Role: stack.RoleBelow, Offset: 1, Scale: 1}
	}
	return a.Current
}

// Tick advances every running tween by one frame.
// Returns true if any animation is still running afterwards.
func (s *AnimationStore) Tick() bool {
	running := false
	for _, a := range s.panels {
		if a.TicksLeft <= 0 {
			continue
		}
		a.TicksLeft--
		if a.TicksLeft == 0 {
			a.Current = a.To
			continue
		}

		t := easeInOutCubic(1 - float64(a.TicksLeft)/float64(a.TicksTotal))
		a.Current = stack.Visual{
			Role:    a.To.Role,
			Offset:  lerp(a.From.Offset, a.To.Offset, t),
			Dim:     lerp(a.From.Dim, a.To.Dim, t),
			Scale:   lerp(a.From.Scale, a.To.Scale, t),
			Animate: true,
			Preview: a.To.Preview,
		}
		running = true
	}
	return running
}

// Animating reports whether any panel is mid-tween.
func (s *AnimationStore) Animating() bool {
	for _, a := range s.panels {
		if a.TicksLeft > 0 {
			return true
		}
	}
	return false
}

// Ticking returns whether the frame timer is currently running.
func (s *AnimationStore) Ticking() bool {
	return s.ticking
}

// SetTicking sets the frame timer state.
func (s *AnimationStore) SetTicking(v bool) {
	s.ticking = v
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
