package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.Width > 0 && w.Height > 0, "world: size must be positive, got %vx%v", w.Width, w.Height)
	check(w.IslandCount >= 0, "world: island_count must not be negative, got %d", w.IslandCount)
	check(w.MinRadius > 0, "world: min_radius must be positive, got %v", w.MinRadius)
	check(w.MaxRadius >= w.MinRadius, "world: max_radius %v is below min_radius %v", w.MaxRadius, w.MinRadius)
	check(w.MinGap >= 0, "world: min_gap must not be negative, got %v", w.MinGap)
	check(w.EdgeMargin >= 0, "world: edge_margin must not be negative, got %v", w.EdgeMargin)
	check(w.SpawnClearance >= 0, "world: spawn_clearance must not be negative, got %v", w.SpawnClearance)
	check(w.WaveCount >= 0, "world: wave_count must not be negative, got %d", w.WaveCount)
	check(w.Width > 2*(w.EdgeMargin+w.MaxRadius) && w.Height > 2*(w.EdgeMargin+w.MaxRadius),
		"world: %vx%v cannot fit an island of radius %v inside margin %v", w.Width, w.Height, w.MaxRadius, w.EdgeMargin)

	b := c.Boat
	check(b.MaxSpeed > 0, "boat: max_speed must be positive, got %v", b.MaxSpeed)
	check(b.Acceleration > 0, "boat: acceleration must be positive, got %v", b.Acceleration)
	check(b.BrakeDeceleration > 0, "boat: brake_deceleration must be positive, got %v", b.BrakeDeceleration)
	check(b.SailTargetRate > 0, "boat: sail_target_rate must be positive, got %v", b.SailTargetRate)
	check(b.SailLevelRate > 0, "boat: sail_level_rate must be positive, got %v", b.SailLevelRate)
	check(b.TurnRate > 0, "boat: turn_rate must be positive, got %v", b.TurnRate)
	check(b.MinTurnAuthority >= 0 && b.MinTurnAuthority <= 1, "boat: min_turn_authority must be in [0, 1], got %v", b.MinTurnAuthority)
	check(b.IdleBeforeAnchor > 0, "boat: idle_before_anchor must be positive, got %v", b.IdleBeforeAnchor)
	check(b.BounceSpeed >= 0, "boat: bounce_speed must not be negative, got %v", b.BounceSpeed)
	check(b.RestSpeed >= 0 && b.RestSail >= 0, "boat: rest thresholds must not be negative")
	check(b.EdgeTolerance >= 0, "boat: edge_tolerance must not be negative, got %v", b.EdgeTolerance)
	check(b.HullLength > 0 && b.HullBeam > 0, "boat: hull must have positive size, got %vx%v", b.HullLength, b.HullBeam)

	check(c.Frame.FPS > 0, "frame: fps must be positive, got %d", c.Frame.FPS)
	check(c.Frame.MaxStep > 0, "frame: max_step must be positive, got %v", c.Frame.MaxStep)
	check(c.Input.HoldWindow > 0, "input: hold_window must be positive, got %v", c.Input.HoldWindow)
	check(c.Render.UnitsPerColumn > 0 && c.Render.UnitsPerRow > 0, "render: units per cell must be positive")

	if err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
