package config

import (
	"fmt"
	"strings"
)

// Preset is a named world size.
type Preset string

const (
	PresetCove        Preset = "cove"
	PresetStandard    Preset = "standard"
	PresetArchipelago Preset = "archipelago"
)

// Presets lists the presets in increasing size.
var Presets = []Preset{PresetCove, PresetStandard, PresetArchipelago}

// ParsePreset parses a preset name. Empty selects the standard preset.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return PresetStandard, nil
	case PresetCove, PresetStandard, PresetArchipelago:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want cove, standard or archipelago)", name)
	}
}

// ApplyPreset resizes the world section for a preset. Other sections are
// left alone; the standard preset keeps the configured world.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetCove:
		cfg.World.Width = 1800
		cfg.World.Height = 1800
		cfg.World.IslandCount = 5
		cfg.World.WaveCount = 24
	case PresetArchipelago:
		cfg.World.Width = 6000
		cfg.World.Height = 6000
		cfg.World.IslandCount = 40
		cfg.World.WaveCount = 160
	}
}
