package world

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/rng"
)

// FeatureKind identifies a class of island decoration.
type FeatureKind uint8

const (
	FeatureCliffs FeatureKind = iota
	FeatureTrees
	FeatureStreams
	FeatureMeadows
)

// FeatureKinds lists every feature kind in render order.
var FeatureKinds = []FeatureKind{FeatureMeadows, FeatureStreams, FeatureTrees, FeatureCliffs}

func (k FeatureKind) String() string {
	switch k {
	case FeatureCliffs:
		return "cliffs"
	case FeatureTrees:
		return "trees"
	case FeatureStreams:
		return "streams"
	case FeatureMeadows:
		return "meadows"
	default:
		return "unknown"
	}
}

// FeatureKey addresses the cached samples for one feature kind of one island.
type FeatureKey struct {
	IslandID int
	Kind     FeatureKind
}

// FeatureSamples are island-local points a renderer stamps for a feature.
type FeatureSamples []core.Vec2

// FeatureCache holds precomputed feature samples for every island.
// It is built once per world and never mutated afterwards.
type FeatureCache map[FeatureKey]FeatureSamples

// Lookup returns the samples for an island feature, or nil.
func (c FeatureCache) Lookup(islandID int, kind FeatureKind) FeatureSamples {
	return c[FeatureKey{IslandID: islandID, Kind: kind}]
}

// sample spacing used when densifying streams and meadows
const featureStep = 4.0

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// inside pulls p toward the origin so it lies within ring at its angle.
func inside(ring Ring, p core.Vec2, margin float64) core.Vec2 {
	l := p.Len()
	if l < core.Epsilon {
		return p
	}
	limit := ring.RadiusAt(math.Atan2(p.Y, p.X)) * margin
	if l <= limit {
		return p
	}
	return p.Scale(limit / l)
}

func synthesizeCliffs(r *rng.RNG, n int) []CliffArc {
	arcs := make([]CliffArc, r.IntRange(1, 4))
	for i := range arcs {
		arcs[i] = CliffArc{
			Start:  r.Intn(n),
			Length: r.IntRange(3, 9),
			Height: r.Range(0.5, 1),
		}
	}
	return arcs
}

func synthesizeTrees(r *rng.RNG, canopy Ring) []TreeCluster {
	clusters := make([]TreeCluster, r.IntRange(3, 8))
	for i := range clusters {
		p := canopy[r.Intn(len(canopy))]
		center := core.Polar(p.Angle, p.Radius*r.Range(0.15, 0.8))
		spread := r.Range(6, 16)

		trees := make([]core.Vec2, r.IntRange(3, 7))
		for j := range trees {
			off := core.Polar(r.Angle(), r.Float()*spread)
			trees[j] = inside(canopy, center.Add(off), 0.95)
		}
		clusters[i] = TreeCluster{Center: center, Radius: spread, Trees: trees}
	}
	return clusters
}

func synthesizeStreams(r *rng.RNG, coast, canopy Ring) []Stream {
	streams := make([]Stream, r.Intn(3))
	for i := range streams {
		idx := r.Intn(len(coast))
		steps := r.IntRange(4, 8)
		start := canopy[idx].Radius * r.Range(0.2, 0.5)
		end := coast[idx].Radius * 0.98
		theta := coast[idx].Angle

		pts := make([]core.Vec2, steps+1)
		for k := range pts {
			t := float64(k) / float64(steps)
			a := theta + r.Signed()*0.06
			pts[k] = core.Polar(a, lerp(start, end, t))
		}
		streams[i] = Stream{Points: pts}
	}
	return streams
}

func synthesizeMeadows(r *rng.RNG, grass, canopy Ring) []Meadow {
	meadows := make([]Meadow, r.IntRange(1, 5))
	for i := range meadows {
		idx := r.Intn(len(canopy))
		rad := lerp(canopy[idx].Radius, grass[idx].Radius, r.Range(0.25, 0.75))
		meadows[i] = Meadow{
			Center:   core.Polar(canopy[idx].Angle, rad),
			Size:     r.Range(10, 26),
			Rotation: r.Angle(),
		}
	}
	return meadows
}

// cacheFeatures flattens an island's features into renderer samples.
// It draws nothing from the RNG.
func cacheFeatures(cache FeatureCache, is *Island) {
	var cliffs FeatureSamples
	n := len(is.Coast)
	for _, arc := range is.Cliffs {
		for k := 0; k < arc.Length; k++ {
			cliffs = append(cliffs, is.Coast[(arc.Start+k)%n].Local())
		}
	}

	var trees FeatureSamples
	for _, c := range is.Trees {
		trees = append(trees, c.Trees...)
	}

	var streams FeatureSamples
	for _, s := range is.Streams {
		for k := 0; k+1 < len(s.Points); k++ {
			a, b := s.Points[k], s.Points[k+1]
			segs := int(math.Max(1, math.Ceil(a.Dist(b)/featureStep)))
			for j := 0; j < segs; j++ {
				streams = append(streams, a.Lerp(b, float64(j)/float64(segs)))
			}
		}
		if len(s.Points) > 0 {
			streams = append(streams, s.Points[len(s.Points)-1])
		}
	}

	var meadows FeatureSamples
	for _, m := range is.Meadows {
		minor := m.Size * 0.6
		for y := -minor; y <= minor; y += featureStep {
			for x := -m.Size; x <= m.Size; x += featureStep {
				if (x*x)/(m.Size*m.Size)+(y*y)/(minor*minor) > 1 {
					continue
				}
				p := m.Center.Add(core.V(x, y).Rotate(m.Rotation))
				meadows = append(meadows, inside(is.Grass, p, 1))
			}
		}
	}

	cache[FeatureKey{is.ID, FeatureCliffs}] = cliffs
	cache[FeatureKey{is.ID, FeatureTrees}] = trees
	cache[FeatureKey{is.ID, FeatureStreams}] = streams
	cache[FeatureKey{is.ID, FeatureMeadows}] = meadows
}
