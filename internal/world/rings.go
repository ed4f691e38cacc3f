package world

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/rng"
)

// deriveRing scales an enclosing ring by factor, jittered per sample, and
// clamps every point so it never crosses the enclosing ring.
func deriveRing(r *rng.RNG, coast, enclosing Ring, factor float64) Ring {
	out := make(Ring, len(coast))
	for i, p := range coast {
		rad := p.Radius * factor * (1 + r.Signed()*RingJitter)
		out[i] = RingPoint{
			Angle:  p.Angle,
			Radius: math.Min(rad, enclosing[i].Radius),
		}
	}
	return out
}

// deriveRings produces beach, grass and canopy rings from a coastline.
// All beach jitter is drawn before any grass jitter, and grass before canopy.
func deriveRings(r *rng.RNG, coast Ring) (beach, grass, canopy Ring) {
	beach = deriveRing(r, coast, coast, BeachFactor)
	grass = deriveRing(r, coast, beach, GrassFactor)
	canopy = deriveRing(r, coast, grass, CanopyFactor)
	return beach, grass, canopy
}
