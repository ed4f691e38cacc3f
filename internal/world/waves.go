package world

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/rng"
)

// Wave is an ambient water emitter. Waves are visual only and never collide.
type Wave struct {
	Pos        core.Vec2
	Amplitude  float64
	Wavelength float64
	Speed      float64 // Drift along +x in units per second
	Phase      float64 // Radians in [0, 2π)
}

// Height returns the wave's contribution to the water surface at p,
// fading to zero a few wavelengths from the emitter.
func (w Wave) Height(p core.Vec2) float64 {
	d := p.Dist(w.Pos)
	reach := w.Wavelength * 3
	if d >= reach {
		return 0
	}
	falloff := 1 - d/reach
	return w.Amplitude * falloff * math.Sin(d/w.Wavelength*2*math.Pi-w.Phase)
}

func synthesizeWaves(r *rng.RNG, p Params) []Wave {
	waves := make([]Wave, p.WaveCount)
	for i := range waves {
		x := r.Float() * p.Width
		y := r.Float() * p.Height
		waves[i] = Wave{
			Pos:        core.V(x, y),
			Amplitude:  r.Range(2, 6),
			Wavelength: r.Range(18, 46),
			Speed:      r.Range(4, 14),
			Phase:      r.Angle(),
		}
	}
	return waves
}

// AdvanceWaves moves every wave forward by dt seconds in place.
// Waves drift along +x, wrapping at the world bounds, and their phase
// advances at 2 rad/s scaled by speed/10.
func AdvanceWaves(waves []Wave, dt, width, height float64) {
	if dt <= 0 {
		return
	}
	for i := range waves {
		w := &waves[i]
		w.Pos.X = core.WrapF(w.Pos.X+w.Speed*dt, width)
		w.Pos.Y = core.WrapF(w.Pos.Y, height)
		w.Phase = core.WrapAngle(w.Phase + 2*(w.Speed/10)*dt)
	}
}

// CloneWaves returns an independent copy of waves.
func CloneWaves(waves []Wave) []Wave {
	out := make([]Wave, len(waves))
	copy(out, waves)
	return out
}
