// Package collision tests boat sample points against island coastlines.
// The coastline is solid: a point collides when it lies inside the polygon
// or within the tolerance of any coastline edge.
package collision

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/world"
)

// DefaultTolerance is the edge proximity, in world units, treated as contact.
const DefaultTolerance = 3.0

// Detector checks points and outlines against a set of islands.
type Detector struct {
	Tolerance float64
}

// New creates a detector with the given edge tolerance.
// Negative tolerances are treated as zero.
func New(tolerance float64) Detector {
	return Detector{Tolerance: math.Max(0, tolerance)}
}

// PointCollides reports whether p touches any island.
func (d Detector) PointCollides(p core.Vec2, islands []world.Island) bool {
	for i := range islands {
		is := &islands[i]
		if p.Dist(is.Center) > is.BoundRadius()+d.Tolerance {
			continue
		}
		if d.hit(is.ToLocal(p), is.Outline()) {
			return true
		}
	}
	return false
}

// OutlineCollides reports whether any point of a world-space outline
// touches any island.
func (d Detector) OutlineCollides(outline []core.Vec2, islands []world.Island) bool {
	if len(outline) == 0 {
		return false
	}
	center, extent := bounds(outline)

	for i := range islands {
		is := &islands[i]
		if center.Dist(is.Center) > is.BoundRadius()+extent+d.Tolerance {
			continue
		}
		poly := is.Outline()
		for _, p := range outline {
			if d.hit(is.ToLocal(p), poly) {
				return true
			}
		}
	}
	return false
}

// hit runs the exact test for an island-local point.
func (d Detector) hit(local core.Vec2, poly []core.Vec2) bool {
	if PointInPolygon(local, poly) {
		return true
	}
	return d.Tolerance > 0 && EdgeDistance(local, poly) <= d.Tolerance
}

// bounds returns the centroid of pts and the largest distance from it.
func bounds(pts []core.Vec2) (core.Vec2, float64) {
	var c core.Vec2
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Scale(1 / float64(len(pts)))

	extent := 0.0
	for _, p := range pts {
		extent = math.Max(extent, p.Dist(c))
	}
	return c, extent
}

// PointInPolygon reports whether p lies inside the closed polygon using an
// even-odd ray cast along +x.
func PointInPolygon(p core.Vec2, poly []core.Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		dy := b.Y - a.Y
		if math.Abs(dy) < core.Epsilon {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/dy
		if p.X < x {
			inside = !inside
		}
	}
	return inside
}

// SegmentDistance returns the distance from p to the segment ab.
// Degenerate segments collapse to point distance.
func SegmentDistance(p, a, b core.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < core.Epsilon {
		return p.Dist(a)
	}
	t := core.ClampF(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Dist(a.Add(ab.Scale(t)))
}

// EdgeDistance returns the distance from p to the nearest edge of the closed
// polygon, or +Inf for an empty polygon.
func EdgeDistance(p core.Vec2, poly []core.Vec2) float64 {
	best := math.Inf(1)
	n := len(poly)
	for i := 0; i < n; i++ {
		best = math.Min(best, SegmentDistance(p, poly[i], poly[(i+1)%n]))
	}
	return best
}

// Field binds a detector to a fixed island set.
type Field struct {
	Detector Detector
	Islands  []world.Island
}

// Blocked reports whether the outline touches any island in the field.
func (f Field) Blocked(outline []core.Vec2) bool {
	return f.Detector.OutlineCollides(outline, f.Islands)
}
