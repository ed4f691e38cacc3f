package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-archipelago/internal/boat"
	"github.com/vovakirdan/tui-archipelago/internal/world"
)

//go:embed defaults/archipelago.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/archipelago.yaml.
func Default() Config {
	w := world.DefaultParams()
	b := boat.DefaultParams()
	return Config{
		World: WorldConfig{
			Width:          w.Width,
			Height:         w.Height,
			IslandCount:    w.IslandCount,
			MinRadius:      w.MinRadius,
			MaxRadius:      w.MaxRadius,
			MinGap:         w.MinGap,
			EdgeMargin:     w.EdgeMargin,
			SpawnClearance: w.SpawnClearance,
			WaveCount:      w.WaveCount,
		},
		Boat: BoatConfig{
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
		},
		Frame: FrameConfig{
			FPS:     30,
			MaxStep: 0.05,
		},
		Input: InputConfig{
			HoldWindow: 0.5,
		},
		Render: RenderConfig{
			UnitsPerColumn: 8,
			UnitsPerRow:    16,
			Shimmer:        true,
		},
		Paths: PathsConfig{
			Database:    "~/.archipelago/seeds.db",
			Screenshots: "~/.archipelago/screenshots",
			LogFile:     "~/.archipelago/archipelago.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
