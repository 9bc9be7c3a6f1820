package stack

// Direction is the way a gesture or programmatic request moves through the stack.
type Direction int

const (
	DirectionNone     Direction = iota
	DirectionForward            // toward higher indices
	DirectionBackward           // toward lower indices
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Role is the position of a panel relative to the active one.
type Role int

const (
	RoleBelow  Role = iota // queued off-screen, ready to enter
	RoleActive             // in the viewport
	RoleAbove              // pushed back behind the active panel
)

func (r Role) String() string {
	switch r {
	case RoleActive:
		return "active"
	case RoleAbove:
		return "above"
	default:
		return "below"
	}
}

const (
	// BaseScale is the scale applied to the base panel while another panel covers it.
	BaseScale = 0.92
	// DimLevel is the dimming applied to panels pushed behind the active one.
	DimLevel = 0.6
)

// Visual is the treatment a renderer applies to one panel.
//
// Offset is measured in viewport heights: -1 is fully above the viewport,
// 0 fills it, +1 is fully below. Dim runs from 0 (none) to 1.
type Visual struct {
	Role    Role
	Offset  float64
	Dim     float64
	Scale   float64
	Animate bool // false snaps to the visual without a transition
	Preview bool // true for live gesture previews, false for committed layouts
}

// Layout computes the committed visual for panel i when the stack moves from
// old to target. Intermediate panels of a skip-level jump snap without animating.
func Layout(old, target, i int) Visual {
	v := resting(target, i)
	v.Animate = true

	if abs(target-old) > 1 && i != old && i != target {
		v.Animate = false
	}

	return v
}

// resting is the canonical visual for panel i while active is in focus.
func resting(active, i int) Visual {
	switch {
	case i == active:
		return Visual{Role: RoleActive, Offset: 0, Dim: 0, Scale: 1}
	case i < active:
		if i == 0 {
			return Visual{Role: RoleAbove, Offset: 0, Dim: DimLevel, Scale: BaseScale}
		}
		return Visual{Role: RoleAbove, Offset: -1, Dim: DimLevel, Scale: 1}
	default:
		return Visual{Role: RoleBelow, Offset: 1, Dim: 0, Scale: 1}
	}
}

// PreviewLayout computes the live visual for panel i while a gesture moves
// from active toward target with the given progress in [0,1].
// Panels other than the two endpoints keep their resting visual.
func PreviewLayout(active, target, i int, progress float64) Visual {
	progress = clamp01(progress)

	from := resting(active, i)
	to := resting(target, i)
	if i != active && i != target {
		from.Preview = true
		return from
	}

	return Visual{
		Role:    from.Role,
		Offset:  lerp(from.Offset, to.Offset, progress),
		Dim:     lerp(from.Dim, to.Dim, progress),
		Scale:   lerp(from.Scale, to.Scale, progress),
		Animate: false,
		Preview: true,
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
