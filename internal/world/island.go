package world

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// RingPoint is one angular sample of a closed ring around an island centre.
type RingPoint struct {
	Angle  float64 // Generating angle in [0, 2π), strictly increasing along the ring
	Radius float64 // Resolved radius in world units
}

// Local returns the point in island-local coordinates.
func (p RingPoint) Local() core.Vec2 {
	return core.Polar(p.Angle, p.Radius)
}

// Ring is a closed polygon described in polar form around the island centre.
// The last point connects back to the first.
type Ring []RingPoint

// Polygon returns the ring as island-local Cartesian points.
func (r Ring) Polygon() []core.Vec2 {
	out := make([]core.Vec2, len(r))
	for i, p := range r {
		out[i] = p.Local()
	}
	return out
}

// MaxRadius returns the largest radius on the ring.
func (r Ring) MaxRadius() float64 {
	m := 0.0
	for _, p := range r {
		m = math.Max(m, p.Radius)
	}
	return m
}

// RadiusAt linearly interpolates the ring radius at an arbitrary angle,
// wrapping between the last and first samples.
func (r Ring) RadiusAt(angle float64) float64 {
	n := len(r)
	switch n {
	case 0:
		return 0
	case 1:
		return r[0].Radius
	}

	angle = core.WrapAngle(angle)
	// first sample with Angle > angle
	i := sort.Search(n, func(k int) bool { return r[k].Angle > angle })

	var a, b RingPoint
	if i == 0 || i == n {
		a, b = r[n-1], r[0]
		b.Angle += 2 * math.Pi
		if i == 0 {
			angle += 2 * math.Pi
		}
	} else {
		a, b = r[i-1], r[i]
	}

	span := b.Angle - a.Angle
	if span < core.Epsilon {
		return a.Radius
	}
	t := (angle - a.Angle) / span
	return a.Radius + (b.Radius-a.Radius)*t
}

// CliffArc marks a run of coastline samples drawn as cliffs.
type CliffArc struct {
	Start  int     // First coastline sample index
	Length int     // Number of samples, wrapping around the ring
	Height float64 // Visual height in [0.5, 1)
}

// TreeCluster is a clump of trees inside the canopy ring.
type TreeCluster struct {
	Center core.Vec2   // Island-local centre
	Radius float64     // Spread of the clump
	Trees  []core.Vec2 // Island-local tree positions
}

// Stream is a polyline running from the interior to the coast.
type Stream struct {
	Points []core.Vec2 // Island-local points, interior first
}

// Meadow is an elliptical highlight between the canopy and grass rings.
type Meadow struct {
	Center   core.Vec2 // Island-local centre
	Size     float64   // Semi-major axis
	Rotation float64   // Orientation in radians
}

// Island is an immutable piece of land produced by the generator.
// All ring and feature coordinates are island-local.
type Island struct {
	ID     int
	Center core.Vec2
	Radius float64 // Base radius before coastline undulation

	Coast  Ring
	Beach  Ring
	Grass  Ring
	Canopy Ring

	Cliffs  []CliffArc
	Trees   []TreeCluster
	Streams []Stream
	Meadows []Meadow

	outline []core.Vec2
	bound   float64
}

// NewIsland builds an island from its coastline and precomputes the
// collision outline and bounding radius. Inner rings and features are
// left empty.
func NewIsland(id int, center core.Vec2, radius float64, coast Ring) Island {
	return Island{
		ID:      id,
		Center:  center,
		Radius:  radius,
		Coast:   coast,
		outline: coast.Polygon(),
		bound:   coast.MaxRadius(),
	}
}

// Outline returns the coastline polygon in island-local coordinates.
// Callers must not modify the returned slice.
func (is *Island) Outline() []core.Vec2 {
	return is.outline
}

// BoundRadius returns the radius of the circle centred on the island that
// contains the whole coastline.
func (is *Island) BoundRadius() float64 {
	return is.bound
}

// ToLocal converts a world position into island-local coordinates.
func (is *Island) ToLocal(p core.Vec2) core.Vec2 {
	return p.Sub(is.Center)
}
