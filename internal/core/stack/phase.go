package stack

// Phase is the navigation state of a Stack. It is one of Idle, Previewing,
// or Committing.
type Phase interface {
	isPhase()
}

// Idle means no gesture is in progress and no transition is in flight.
type Idle struct{}

// Previewing means a gesture is moving toward a neighbor without committing.
type Previewing struct {
	Direction Direction
	Target    int
	Progress  float64
}

// Committing means a timed transition from From to Target is in flight.
// From == Target for snap-back transitions.
type Committing struct {
	From   int
	Target int
}

func (Idle) isPhase()       {}
func (Previewing) isPhase() {}
func (Committing) isPhase() {}

type event interface {
	isEvent()
}

type (
	previewEvent struct {
		direction Direction
		target    int
		progress  float64
	}
	commitEvent struct {
		from   int
		target int
	}
	completeEvent struct{}
	cancelEvent   struct{}
)

func (previewEvent) isEvent()  {}
func (commitEvent) isEvent()   {}
func (completeEvent) isEvent() {}
func (cancelEvent) isEvent()   {}

// step is the only transition function for Phase. It returns false when the
// event is not accepted in the current phase, leaving the phase unchanged.
func step(p Phase, ev event) (Phase, bool) {
	switch p.(type) {
	case Committing:
		if _, ok := ev.(completeEvent); ok {
			return Idle{}, true
		}
		return p, false

	case Idle, Previewing:
		switch e := ev.(type) {
		case previewEvent:
			return Previewing{Direction: e.direction, Target: e.target, Progress: e.progress}, true
		case commitEvent:
			return Committing{From: e.from, Target: e.target}, true
		case cancelEvent:
			return Idle{}, true
		}
		return p, false
	}

	return p, false
}
