// Package boat implements the per-frame boat model: the anchor sub-machine,
// the sail and speed model, steering, and collision-aware movement.
// Step is a pure function of the previous state, elapsed time and commands.
package boat

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// Status is the label shown to the player.
type Status string

const (
	StatusIdle     Status = "Idle"
	StatusUnderway Status = "Under way"
	StatusDropping Status = "Dropping anchor"
	StatusAnchored Status = "At anchor"
	StatusWeighing Status = "Weighing anchor"
)

// KnotsPerUnit converts world units per second into displayed knots.
const KnotsPerUnit = 0.1

// State is the full mutable boat state.
type State struct {
	Pos            core.Vec2
	Heading        float64 // Compass radians, 0 = north, clockwise
	Speed          float64
	Sail           float64 // Effective sail level in [0, 1]
	SailTarget     float64 // Commanded sail in [0, 1]
	Anchor         AnchorState
	AnchorProgress float64 // Drop or weigh progress in [0, 1]
	IdleTime       float64
	WakePhase      float64
	Blocked        bool // The last step was rejected by land
}

// Spawn returns a boat at rest at pos, heading north with the anchor stowed.
func Spawn(pos core.Vec2) State {
	return State{Pos: pos}
}

// Status derives the player-facing label.
func (s State) Status(p Params) Status {
	switch s.Anchor {
	case Dropping:
		return StatusDropping
	case Anchored:
		return StatusAnchored
	case Weighing:
		return StatusWeighing
	}
	if s.Speed >= p.RestSpeed {
		return StatusUnderway
	}
	return StatusIdle
}

// Telemetry is the rounded state shown in the HUD.
type Telemetry struct {
	Knots   float64
	Heading int // Degrees in [0, 360)
	Sail    int // Percent
	Status  Status
}

// Telemetry rounds the state for display.
func (s State) Telemetry(p Params) Telemetry {
	deg := int(math.Round(s.Heading*180/math.Pi)) % 360
	if deg < 0 {
		deg += 360
	}
	return Telemetry{
		Knots:   math.Round(s.Speed*KnotsPerUnit*10) / 10,
		Heading: deg,
		Sail:    int(math.Round(s.Sail * 100)),
		Status:  s.Status(p),
	}
}
