package boat

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// Wake animation rates: radians per second at rest, plus per unit of speed.
const (
	wakeBaseRate  = 0.6
	wakeSpeedRate = 0.05
)

// Terrain reports whether a world-space hull outline touches land.
type Terrain interface {
	Blocked(outline []core.Vec2) bool
}

// TerrainFunc adapts a function to Terrain.
type TerrainFunc func(outline []core.Vec2) bool

// Blocked calls f.
func (f TerrainFunc) Blocked(outline []core.Vec2) bool {
	return f(outline)
}

// Env is what the boat sails through.
type Env struct {
	Width   float64 // Navigable width; <= 0 disables clamping
	Height  float64 // Navigable height; <= 0 disables clamping
	Terrain Terrain // nil means open water
}

// Step advances the boat by dt seconds under the given commands.
// A non-positive or non-finite dt returns s unchanged.
func Step(p Params, s State, dt float64, cmds core.Commands, env Env) State {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return s
	}

	commanded := cmds.Any()
	prevHeading := s.Heading

	stepAnchor(p, &s, dt, commanded)
	stepSail(p, &s, dt, cmds)
	stepSpeed(p, &s, dt, commanded)

	if s.Anchor.AllowsSteering() {
		if steer := cmds.Steer(); steer != 0 {
			authority := math.Max(p.MinTurnAuthority, s.Speed/p.MaxSpeed)
			s.Heading = core.WrapAngle(s.Heading + steer*p.TurnRate*authority*dt)
		}
	}

	move(p, &s, dt, prevHeading, env)

	s.WakePhase = core.WrapAngle(s.WakePhase + dt*(wakeBaseRate+s.Speed*wakeSpeedRate))
	sanitize(p, &s)
	return s
}

func stepSail(p Params, s *State, dt float64, cmds core.Commands) {
	switch {
	case cmds.Forward && !cmds.Backward:
		s.SailTarget += p.SailTargetRate * dt
	case cmds.Backward && !cmds.Forward:
		s.SailTarget -= p.SailTargetRate * dt
	}
	s.SailTarget = core.ClampF(s.SailTarget, 0, 1)
	s.Sail = core.ClampF(core.Approach(s.Sail, s.SailTarget, p.SailLevelRate*dt), 0, 1)
}

func stepSpeed(p Params, s *State, dt float64, commanded bool) {
	desired := s.Sail * p.MaxSpeed
	if !s.Anchor.AllowsThrust() {
		desired = 0
	}

	rate := p.BrakeDeceleration
	if s.Speed < desired {
		rate = p.Acceleration
	}
	s.Speed = core.Approach(s.Speed, desired, rate*dt)

	if s.Anchor == Anchored {
		s.Speed = 0
	}

	if !commanded && s.Speed < p.RestSpeed && s.SailTarget < p.RestSail {
		s.Speed = 0
		s.SailTarget = 0
		if s.Sail < p.RestSail {
			s.Sail = 0
		}
	}
}

// move integrates position and rejects any pose whose hull touches land.
func move(p Params, s *State, dt, prevHeading float64, env Env) {
	proposed := s.Pos.Add(Forward(s.Heading).Scale(s.Speed * dt))
	if env.Width > 0 {
		proposed.X = core.ClampF(proposed.X, 0, env.Width)
	}
	if env.Height > 0 {
		proposed.Y = core.ClampF(proposed.Y, 0, env.Height)
	}

	s.Blocked = false
	if env.Terrain == nil || !env.Terrain.Blocked(Outline(p, proposed, s.Heading)) {
		s.Pos = proposed
		return
	}

	s.Blocked = true
	s.Speed = math.Min(s.Speed, p.BounceSpeed)
	if s.Heading != prevHeading && env.Terrain.Blocked(Outline(p, s.Pos, s.Heading)) {
		s.Heading = prevHeading
	}
}

func sanitize(p Params, s *State) {
	s.Speed = core.ClampF(s.Speed, 0, p.MaxSpeed)
	s.Sail = core.ClampF(s.Sail, 0, 1)
	s.SailTarget = core.ClampF(s.SailTarget, 0, 1)
	s.AnchorProgress = core.ClampF(s.AnchorProgress, 0, 1)
	s.IdleTime = core.ClampF(s.IdleTime, 0, math.MaxFloat64)
	if math.IsNaN(s.Heading) {
		s.Heading = 0
	}
	if math.IsNaN(s.WakePhase) {
		s.WakePhase = 0
	}
}
