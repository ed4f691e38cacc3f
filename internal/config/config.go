// Package config provides YAML-based configuration for the archipelago:
// world generation, boat handling, the frame loop, input and rendering.
package config

import (
	"time"

	"github.com/vovakirdan/tui-archipelago/internal/boat"
	"github.com/vovakirdan/tui-archipelago/internal/render"
	"github.com/vovakirdan/tui-archipelago/internal/sim"
	"github.com/vovakirdan/tui-archipelago/internal/world"
)

// Config is the complete application configuration.
type Config struct {
	World  WorldConfig  `yaml:"world" json:"world" jsonschema:"description=World generation parameters"`
	Boat   BoatConfig   `yaml:"boat" json:"boat" jsonschema:"description=Boat handling"`
	Frame  FrameConfig  `yaml:"frame" json:"frame" jsonschema:"description=Frame loop timing"`
	Input  InputConfig  `yaml:"input" json:"input" jsonschema:"description=Keyboard input collection"`
	Render RenderConfig `yaml:"render" json:"render" jsonschema:"description=Terminal rendering"`
	Paths  PathsConfig  `yaml:"paths" json:"paths" jsonschema:"description=Files written by the application"`
}

// WorldConfig defines world generation parameters.
type WorldConfig struct {
	Width          float64 `yaml:"width" json:"width" jsonschema:"minimum=1,description=World width in world units"`
	Height         float64 `yaml:"height" json:"height" jsonschema:"minimum=1,description=World height in world units"`
	IslandCount    int     `yaml:"island_count" json:"island_count" jsonschema:"minimum=0,description=Requested number of islands"`
	MinRadius      float64 `yaml:"min_radius" json:"min_radius" jsonschema:"minimum=1"`
	MaxRadius      float64 `yaml:"max_radius" json:"max_radius" jsonschema:"minimum=1"`
	MinGap         float64 `yaml:"min_gap" json:"min_gap" jsonschema:"minimum=0,description=Clearance between island base circles"`
	EdgeMargin     float64 `yaml:"edge_margin" json:"edge_margin" jsonschema:"minimum=0"`
	SpawnClearance float64 `yaml:"spawn_clearance" json:"spawn_clearance" jsonschema:"minimum=0,description=Open water kept around the spawn point"`
	WaveCount      int     `yaml:"wave_count" json:"wave_count" jsonschema:"minimum=0"`
}

// BoatConfig defines boat handling. Speeds are world units per second.
type BoatConfig struct {
	MaxSpeed          float64 `yaml:"max_speed" json:"max_speed" jsonschema:"minimum=1"`
	Acceleration      float64 `yaml:"acceleration" json:"acceleration"`
	BrakeDeceleration float64 `yaml:"brake_deceleration" json:"brake_deceleration"`
	SailTargetRate    float64 `yaml:"sail_target_rate" json:"sail_target_rate" jsonschema:"description=Sail target change per second"`
	SailLevelRate     float64 `yaml:"sail_level_rate" json:"sail_level_rate" jsonschema:"description=Sail level change per second"`
	TurnRate          float64 `yaml:"turn_rate" json:"turn_rate" jsonschema:"description=Radians per second at full authority"`
	MinTurnAuthority  float64 `yaml:"min_turn_authority" json:"min_turn_authority" jsonschema:"minimum=0,maximum=1"`
	IdleBeforeAnchor  float64 `yaml:"idle_before_anchor" json:"idle_before_anchor" jsonschema:"description=Seconds idle before the anchor drops"`
	BounceSpeed       float64 `yaml:"bounce_speed" json:"bounce_speed" jsonschema:"minimum=0"`
	RestSpeed         float64 `yaml:"rest_speed" json:"rest_speed" jsonschema:"minimum=0"`
	RestSail          float64 `yaml:"rest_sail" json:"rest_sail" jsonschema:"minimum=0"`
	EdgeTolerance     float64 `yaml:"edge_tolerance" json:"edge_tolerance" jsonschema:"minimum=0"`
	HullLength        float64 `yaml:"hull_length" json:"hull_length"`
	HullBeam          float64 `yaml:"hull_beam" json:"hull_beam"`
}

// FrameConfig defines frame loop timing.
type FrameConfig struct {
	FPS     int     `yaml:"fps" json:"fps" jsonschema:"minimum=1,maximum=240"`
	MaxStep float64 `yaml:"max_step" json:"max_step" jsonschema:"description=Largest simulated step in seconds"`
}

// InputConfig defines how key presses become held commands.
type InputConfig struct {
	HoldWindow float64 `yaml:"hold_window" json:"hold_window" jsonschema:"description=Seconds a key counts as held after its last press"`
}

// RenderConfig defines the world-to-terminal projection.
type RenderConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column" json:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row" json:"units_per_row"`
	Shimmer        bool    `yaml:"shimmer" json:"shimmer" jsonschema:"description=Animate open water texture"`
}

// PathsConfig locates files. A leading ~ expands to the home directory.
type PathsConfig struct {
	Database    string `yaml:"database" json:"database"`
	Screenshots string `yaml:"screenshots" json:"screenshots"`
	LogFile     string `yaml:"log_file" json:"log_file"`
}

// WorldParams converts the world section for the generator.
func (c Config) WorldParams() world.Params {
	w := c.World
	return world.Params{
		Width:          w.Width,
		Height:         w.Height,
		IslandCount:    w.IslandCount,
		MinRadius:      w.MinRadius,
		MaxRadius:      w.MaxRadius,
		MinGap:         w.MinGap,
		EdgeMargin:     w.EdgeMargin,
		SpawnClearance: w.SpawnClearance,
		WaveCount:      w.WaveCount,
	}
}

// BoatParams converts the boat section for the boat model.
func (c Config) BoatParams() boat.Params {
	b := c.Boat
	return boat.Params{
		MaxSpeed:          b.MaxSpeed,
		Acceleration:      b.Acceleration,
		BrakeDeceleration: b.BrakeDeceleration,
		SailTargetRate:    b.SailTargetRate,
		SailLevelRate:     b.SailLevelRate,
		TurnRate:          b.TurnRate,
		MinTurnAuthority:  b.MinTurnAuthority,
		IdleBeforeAnchor:  b.IdleBeforeAnchor,
		BounceSpeed:       b.BounceSpeed,
		RestSpeed:         b.RestSpeed,
		RestSail:          b.RestSail,
		EdgeTolerance:     b.EdgeTolerance,
		HullLength:        b.HullLength,
		HullBeam:          b.HullBeam,
	}
}

// SimParams returns everything a simulation session needs.
func (c Config) SimParams() sim.Params {
	return sim.Params{
		World:   c.WorldParams(),
		Boat:    c.BoatParams(),
		MaxStep: c.Frame.MaxStep,
	}
}

// RenderOptions converts the render section for the renderer.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		UnitsPerColumn: c.Render.UnitsPerColumn,
		UnitsPerRow:    c.Render.UnitsPerRow,
		Shimmer:        c.Render.Shimmer,
	}
}

// HoldWindow returns the input hold window as a duration.
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldWindow * float64(time.Second))
}
