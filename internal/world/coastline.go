package world

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/rng"
)

// bump is a localised angular bulge (headland) or dent (cove).
type bump struct {
	angle    float64
	width    float64
	strength float64
}

func (b bump) at(theta float64) float64 {
	d := angleDiff(theta, b.angle)
	return b.strength * math.Exp(-(d*d)/(2*b.width*b.width))
}

type wave struct {
	freq  float64
	phase float64
	amp   float64
}

// angleDiff returns the signed angular distance from b to a in [-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func drawBumps(r *rng.RNG, count int, widthLo, widthHi, strengthLo, strengthHi float64) []bump {
	out := make([]bump, count)
	for i := range out {
		out[i].angle = r.Angle()
		out[i].width = r.Range(widthLo, widthHi)
		out[i].strength = r.Range(strengthLo, strengthHi)
	}
	return out
}

// synthesizeCoast builds the coastline of an island with the given base radius.
// The radius multiplier at each sample combines harmonics, headlands, coves
// and per-sample jitter, then is clamped to [MinCoastFactor, MaxCoastFactor].
func synthesizeCoast(r *rng.RNG, radius float64) Ring {
	n := r.IntRange(MinCoastSamples, MaxCoastSamples)

	var waves [len(harmonics)]wave
	for i, h := range harmonics {
		waves[i] = wave{freq: h.freq, phase: r.Angle(), amp: r.Range(h.ampLo, h.ampHigh)}
	}

	headlands := drawBumps(r, r.IntRange(1, 3), 0.18, 0.42, 0.08, 0.2)
	coves := drawBumps(r, r.Intn(3), 0.15, 0.35, 0.06, 0.16)

	coast := make(Ring, n)
	for i := range coast {
		theta := (float64(i) + 0.5*r.Float()) / float64(n) * 2 * math.Pi
		jitter := r.Signed() * 0.025

		m := 1 + jitter
		for _, w := range waves {
			m += w.amp * math.Sin(w.freq*theta+w.phase)
		}
		for _, h := range headlands {
			m += h.at(theta)
		}
		for _, c := range coves {
			m -= c.at(theta)
		}

		coast[i] = RingPoint{
			Angle:  theta,
			Radius: radius * core.ClampF(m, MinCoastFactor, MaxCoastFactor),
		}
	}
	return coast
}
