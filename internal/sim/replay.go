package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/vovakirdan/tui-archipelago/internal/boat"
	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// Segment holds a set of commands for a duration in seconds.
type Segment struct {
	Commands core.Commands
	Duration float64
}

// Script is a sequence of held-command segments.
type Script []Segment

// Duration returns the total scripted time.
func (s Script) Duration() float64 {
	total := 0.0
	for _, seg := range s {
		total += seg.Duration
	}
	return total
}

// ParseScript parses "forward:2,forward+left:0.5,idle:4". Commands are
// forward, backward, left, right or idle, joined with '+'. Every malformed
// segment is reported.
func ParseScript(text string) (Script, error) {
	var script Script
	var errs error

	for i, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seg, err := parseSegment(part)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("segment %d %q: %w", i+1, part, err))
			continue
		}
		script = append(script, seg)
	}
	if errs != nil {
		return nil, fmt.Errorf("sim: parse script: %w", errs)
	}
	return script, nil
}

func parseSegment(part string) (Segment, error) {
	names, dur, ok := strings.Cut(part, ":")
	if !ok {
		return Segment{}, errors.New("missing duration")
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(dur), 64)
	if err != nil {
		return Segment{}, fmt.Errorf("bad duration: %w", err)
	}
	if d < 0 {
		return Segment{}, fmt.Errorf("negative duration %v", d)
	}

	var cmds core.Commands
	for _, name := range strings.Split(names, "+") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "forward", "f":
			cmds.Forward = true
		case "backward", "back", "b":
			cmds.Backward = true
		case "left", "l":
			cmds.Left = true
		case "right", "r":
			cmds.Right = true
		case "idle", "":
		default:
			return Segment{}, fmt.Errorf("unknown command %q", name)
		}
	}
	return Segment{Commands: cmds, Duration: d}, nil
}

// Frame is one step of a replay.
type Frame struct {
	Time      float64
	Pos       core.Vec2
	Anchor    boat.AnchorState
	Blocked   bool
	Telemetry boat.Telemetry
}

// Replay runs script against sim at a fixed step and records every frame.
// The simulation must already be loaded.
func Replay(s *Simulation, script Script, dt float64) []Frame {
	if dt <= 0 || !s.Loaded() {
		return nil
	}

	var frames []Frame
	elapsed := 0.0
	for _, seg := range script {
		steps := int(seg.Duration/dt + 0.5)
		for i := 0; i < steps; i++ {
			s.Step(dt, seg.Commands)
			elapsed += dt
			b := s.Boat()
			frames = append(frames, Frame{
				Time:      elapsed,
				Pos:       b.Pos,
				Anchor:    b.Anchor,
				Blocked:   b.Blocked,
				Telemetry: s.Telemetry(),
			})
		}
	}
	return frames
}
