// Package world generates the immutable archipelago a boat sails through:
// non-overlapping islands with organic coastlines, nested beach, grass and
// canopy rings, decorative features and ambient waves.
//
// Generation consumes the RNG in a fixed order, so equal seeds and params
// always yield identical worlds.
package world

import (
	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/rng"
)

// Stats describes how island placement went.
type Stats struct {
	Requested int
	Placed    int
	Attempts  int
}

// Shortfall reports whether fewer islands were placed than requested.
func (s Stats) Shortfall() bool {
	return s.Placed < s.Requested
}

// World is a generated archipelago. Islands and features never change after
// generation; waves are the initial emitter state and are copied by callers
// that animate them.
type World struct {
	Seed     string
	Width    float64
	Height   float64
	Spawn    core.Vec2
	Islands  []Island
	Waves    []Wave
	Features FeatureCache
	Stats    Stats
}

// Bounds returns the world size.
func (w *World) Bounds() (float64, float64) {
	return w.Width, w.Height
}

// Island returns the island with the given id, or nil.
func (w *World) Island(id int) *Island {
	if id < 0 || id >= len(w.Islands) {
		return nil
	}
	return &w.Islands[id]
}

// SpawnPoint returns the boat spawn location for a world of the given size.
func SpawnPoint(p Params) core.Vec2 {
	return core.V(p.Width/2, p.Height/2)
}

// FromSeed generates the world for a seed string.
func FromSeed(p Params, seed string) *World {
	w := Generate(p, rng.New(seed))
	w.Seed = seed
	return w
}

// Generate builds a world from the RNG. Placement stops once IslandCount
// islands are placed or the attempt budget is spent; a world with fewer
// islands than requested is still valid.
func Generate(p Params, r *rng.RNG) *World {
	w := &World{
		Width:    p.Width,
		Height:   p.Height,
		Spawn:    SpawnPoint(p),
		Features: make(FeatureCache),
	}
	w.Stats.Requested = p.IslandCount

	budget := p.MaxAttempts()
	for w.Stats.Attempts < budget && len(w.Islands) < p.IslandCount {
		w.Stats.Attempts++

		radius := r.Range(p.MinRadius, p.MaxRadius)
		x := r.Range(p.EdgeMargin+radius, p.Width-p.EdgeMargin-radius)
		y := r.Range(p.EdgeMargin+radius, p.Height-p.EdgeMargin-radius)
		center := core.V(x, y)

		if !fits(p, w, center, radius) {
			continue
		}

		is := synthesizeIsland(r, len(w.Islands), center, radius)
		cacheFeatures(w.Features, &is)
		w.Islands = append(w.Islands, is)
	}
	w.Stats.Placed = len(w.Islands)

	w.Waves = synthesizeWaves(r, p)
	return w
}

// fits reports whether a candidate circle keeps clear of placed islands and
// of the spawn point.
func fits(p Params, w *World, center core.Vec2, radius float64) bool {
	if center.Dist(w.Spawn) < radius*MaxCoastFactor+p.SpawnClearance {
		return false
	}
	for i := range w.Islands {
		other := &w.Islands[i]
		if center.Dist(other.Center) < radius+other.Radius+p.MinGap {
			return false
		}
	}
	return true
}

func synthesizeIsland(r *rng.RNG, id int, center core.Vec2, radius float64) Island {
	is := NewIsland(id, center, radius, synthesizeCoast(r, radius))
	is.Beach, is.Grass, is.Canopy = deriveRings(r, is.Coast)

	is.Cliffs = synthesizeCliffs(r, len(is.Coast))
	is.Trees = synthesizeTrees(r, is.Canopy)
	is.Streams = synthesizeStreams(r, is.Coast, is.Canopy)
	is.Meadows = synthesizeMeadows(r, is.Grass, is.Canopy)
	return is
}
