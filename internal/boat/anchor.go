package boat

// AnchorState is the anchor sub-machine. It cycles
// Stowed → Dropping → Anchored → Weighing → Stowed.
type AnchorState uint8

const (
	Stowed AnchorState = iota
	Dropping
	Anchored
	Weighing
)

// AnchorRate is anchor drop/weigh progress per second.
const AnchorRate = 1.0

func (a AnchorState) String() string {
	switch a {
	case Stowed:
		return "stowed"
	case Dropping:
		return "dropping"
	case Anchored:
		return "anchored"
	case Weighing:
		return "weighing"
	default:
		return "unknown"
	}
}

// AllowsThrust reports whether the boat may accelerate.
func (a AnchorState) AllowsThrust() bool {
	return a == Stowed
}

// AllowsSteering reports whether the rudder is usable.
func (a AnchorState) AllowsSteering() bool {
	return a == Stowed || a == Dropping
}

// stepAnchor advances the anchor sub-machine by dt seconds.
func stepAnchor(p Params, s *State, dt float64, commanded bool) {
	switch s.Anchor {
	case Stowed:
		if commanded || s.Speed >= p.RestSpeed {
			s.IdleTime = 0
			return
		}
		s.IdleTime += dt
		if s.IdleTime >= p.IdleBeforeAnchor {
			s.Anchor = Dropping
			s.AnchorProgress = 0
		}

	case Dropping:
		// commands steer but cannot stop the drop
		s.AnchorProgress += dt * AnchorRate
		if s.AnchorProgress >= 1 {
			s.Anchor = Anchored
			s.AnchorProgress = 1
		}

	case Anchored:
		if commanded {
			s.Anchor = Weighing
			s.AnchorProgress = 0
		}

	case Weighing:
		s.AnchorProgress += dt * AnchorRate
		if s.AnchorProgress >= 1 {
			s.Anchor = Stowed
			s.AnchorProgress = 0
			s.IdleTime = 0
		}
	}
}
