package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/vovakirdan/tui-archipelago/internal/boat"
	"github.com/vovakirdan/tui-archipelago/internal/render"
	"github.com/vovakirdan/tui-archipelago/internal/sim"
	"github.com/vovakirdan/tui-archipelago/internal/world"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestParamsMatchDomainDefaults(t *testing.T) {
	cfg := Default()
	if got := cfg.WorldParams(); got != world.DefaultParams() {
		t.Errorf("WorldParams() = %+v, expected %+v", got, world.DefaultParams())
	}
	if got := cfg.BoatParams(); got != boat.DefaultParams() {
		t.Errorf("BoatParams() = %+v, expected %+v", got, boat.DefaultParams())
	}
	if got := cfg.SimParams(); got != sim.DefaultParams() {
		t.Errorf("SimParams() = %+v, expected %+v", got, sim.DefaultParams())
	}
	if got := cfg.RenderOptions(); got != render.DefaultOptions() {
		t.Errorf("RenderOptions() = %+v, expected %+v", got, render.DefaultOptions())
	}
	if got := cfg.HoldWindow(); got != 500*time.Millisecond {
		t.Errorf("HoldWindow() = %v, expected 500ms", got)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("world:\n  island_count: 4\nframe:\n  fps: 60\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.World.IslandCount != 4 {
		t.Errorf("IslandCount = %d, expected 4", cfg.World.IslandCount)
	}
	if cfg.Frame.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", cfg.Frame.FPS)
	}
	if cfg.World.Width != Default().World.Width {
		t.Errorf("Width = %v, expected default %v", cfg.World.Width, Default().World.Width)
	}
	if cfg.Boat != Default().Boat {
		t.Error("boat section should keep defaults")
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("world: [not, a, map]")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 0
	cfg.World.MaxRadius = cfg.World.MinRadius - 1
	cfg.Boat.TurnRate = -1
	cfg.Frame.FPS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}

	errs := multierr.Errors(errors.Unwrap(err))
	// zero width also fails the fit check
	if len(errs) != 5 {
		t.Errorf("Validate() reported %d problems, expected 5: %v", len(errs), err)
	}
	for _, want := range []string{"world: size", "max_radius", "turn_rate", "fps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q should mention %q", err, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("boat:\n  max_speed: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Boat.MaxSpeed != 200 {
		t.Errorf("MaxSpeed = %v, expected 200", cfg.Boat.MaxSpeed)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("frame:\n  max_step: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject an invalid config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Error("without config files Load should return the defaults")
	}

	userDir := filepath.Join(home, ".archipelago")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("world:\n  wave_count: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.World.WaveCount != 7 {
		t.Errorf("WaveCount = %d, expected 7 from the user config", cfg.World.WaveCount)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.archipelago/seeds.db", filepath.Join(home, ".archipelago/seeds.db")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"rel/~/path", "rel/~/path"},
		{"~user/x", "~user/x"},
	}

	for _, tc := range tests {
		if got := ExpandHome(tc.in); got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets {
		cfg := Default()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: Validate() = %v", p, err)
		}
	}

	cfg := Default()
	ApplyPreset(&cfg, PresetStandard)
	if cfg != Default() {
		t.Error("standard preset should not change the config")
	}

	cfg = Default()
	ApplyPreset(&cfg, PresetCove)
	if cfg.World.IslandCount >= Default().World.IslandCount {
		t.Errorf("cove IslandCount = %d, expected fewer than default", cfg.World.IslandCount)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected Preset
		wantErr  bool
	}{
		{"", PresetStandard, false},
		{"cove", PresetCove, false},
		{" Archipelago ", PresetArchipelago, false},
		{"ocean", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() error = %v", err)
	}
	for _, key := range []string{"island_count", "hold_window", "units_per_column", "Archipelago configuration"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("schema should mention %q", key)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v", err)
	}
	if cfg != Default() {
		t.Error("marshalled defaults should parse back unchanged")
	}
}
