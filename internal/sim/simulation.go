// Package sim owns one sailing session: the immutable world generated from a
// seed plus the mutable boat and wave state advanced by Step.
//
// A Simulation is driven from a single goroutine (the frame loop); it does no
// locking of its own.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-archipelago/internal/boat"
	"github.com/vovakirdan/tui-archipelago/internal/collision"
	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/world"
)

// Params groups everything a session needs.
type Params struct {
	World   world.Params
	Boat    boat.Params
	MaxStep float64 // Largest dt accepted by Step, in seconds
}

// DefaultParams returns the stock session parameters.
func DefaultParams() Params {
	return Params{
		World:   world.DefaultParams(),
		Boat:    boat.DefaultParams(),
		MaxStep: 0.05,
	}
}

// Snapshot is a read-only view of one frame. Boat and Waves are copies;
// World is shared and must not be modified.
type Snapshot struct {
	Seed  string
	World *world.World
	Boat  boat.State
	Waves []world.Wave
	Time  float64
}

// Simulation is a single sailing session.
type Simulation struct {
	params Params
	logger *log.Logger

	world *world.World
	env   boat.Env
	boat  boat.State
	waves []world.Wave
	time  float64
}

// New creates a simulation with no world loaded. A nil logger discards output.
func New(p Params, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulation{params: p, logger: logger}
}

// Load generates the world for seed and resets the boat and waves.
// Empty seeds are replaced with a random one. It returns the seed in use.
func (s *Simulation) Load(seed string) string {
	seed = ResolveSeed(seed)

	w := world.FromSeed(s.params.World, seed)

	// swap in only the complete world
	s.world = w
	s.env = boat.Env{
		Width:  w.Width,
		Height: w.Height,
		Terrain: collision.Field{
			Detector: collision.New(s.params.Boat.EdgeTolerance),
			Islands:  w.Islands,
		},
	}
	s.boat = boat.Spawn(w.Spawn)
	s.waves = world.CloneWaves(w.Waves)
	s.time = 0

	s.logger.Info("world generated",
		"seed", seed,
		"islands", w.Stats.Placed,
		"requested", w.Stats.Requested,
		"attempts", w.Stats.Attempts)
	if w.Stats.Shortfall() {
		s.logger.Warn("placed fewer islands than requested",
			"seed", seed,
			"placed", w.Stats.Placed,
			"requested", w.Stats.Requested)
	}
	return seed
}

// Loaded reports whether a world has been generated.
func (s *Simulation) Loaded() bool {
	return s.world != nil
}

// Seed returns the seed of the current world, or "".
func (s *Simulation) Seed() string {
	if s.world == nil {
		return ""
	}
	return s.world.Seed
}

// World returns the current world, or nil before the first Load.
func (s *Simulation) World() *world.World {
	return s.world
}

// Boat returns the current boat state.
func (s *Simulation) Boat() boat.State {
	return s.boat
}

// Params returns the session parameters.
func (s *Simulation) Params() Params {
	return s.params
}

// Step advances the session by dt seconds, clamped to [0, MaxStep].
func (s *Simulation) Step(dt float64, cmds core.Commands) {
	if s.world == nil {
		return
	}
	limit := s.params.MaxStep
	if limit <= 0 {
		limit = dt
	}
	dt = core.ClampF(dt, 0, limit)
	if dt == 0 {
		return
	}

	s.boat = boat.Step(s.params.Boat, s.boat, dt, cmds, s.env)
	world.AdvanceWaves(s.waves, dt, s.world.Width, s.world.Height)
	s.time += dt
}

// Snapshot returns a copy of the current frame state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Seed:  s.Seed(),
		World: s.world,
		Boat:  s.boat,
		Waves: world.CloneWaves(s.waves),
		Time:  s.time,
	}
}

// Telemetry returns the rounded HUD values for the boat.
func (s *Simulation) Telemetry() boat.Telemetry {
	return s.boat.Telemetry(s.params.Boat)
}
