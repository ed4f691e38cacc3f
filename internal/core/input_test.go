package core

import "testing"

func TestCommandsSetHas(t *testing.T) {
	var c Commands
	if c.Any() {
		t.Error("empty Commands should not report Any()")
	}

	for _, cmd := range AllCommands {
		var single Commands
		single.Set(cmd)
		if !single.Has(cmd) {
			t.Errorf("Has(%v) = false after Set", cmd)
		}
		if single.Has(cmd.Opposite()) {
			t.Errorf("Has(%v) = true, only %v was set", cmd.Opposite(), cmd)
		}
		if !single.Any() {
			t.Errorf("Any() = false with %v held", cmd)
		}
	}
}

func TestCommandsSteer(t *testing.T) {
	tests := []struct {
		name     string
		c        Commands
		expected float64
	}{
		{"none", Commands{}, 0},
		{"left", Commands{Left: true}, -1},
		{"right", Commands{Right: true}, 1},
		{"both cancel", Commands{Left: true, Right: true}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Steer(); got != tc.expected {
				t.Errorf("Steer() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	if CommandForward.String() != "Forward" {
		t.Errorf("String() = %q, expected Forward", CommandForward.String())
	}
	if Command(99).String() != "Unknown" {
		t.Error("unknown command should stringify as Unknown")
	}
}
