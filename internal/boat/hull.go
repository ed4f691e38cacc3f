package boat

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// HullShape returns the hull vertices in boat space, X forward and Y to
// starboard: bow, starboard shoulder, starboard quarter, port quarter,
// port shoulder.
func HullShape(p Params) []core.Vec2 {
	l, b := p.HullLength/2, p.HullBeam/2
	return []core.Vec2{
		core.V(l, 0),
		core.V(l/3, b),
		core.V(-l, b*0.8),
		core.V(-l, -b*0.8),
		core.V(l/3, -b),
	}
}

// Forward returns the unit vector for a compass heading (0 = north, +y down).
func Forward(heading float64) core.Vec2 {
	s, c := math.Sincos(heading)
	return core.V(s, -c)
}

// ToWorld places a boat-space point at pos with the given heading.
func ToWorld(local, pos core.Vec2, heading float64) core.Vec2 {
	f := Forward(heading)
	starboard := core.V(-f.Y, f.X)
	return pos.Add(f.Scale(local.X)).Add(starboard.Scale(local.Y))
}

// Hull returns the world-space hull vertices.
func Hull(p Params, pos core.Vec2, heading float64) []core.Vec2 {
	shape := HullShape(p)
	for i, v := range shape {
		shape[i] = ToWorld(v, pos, heading)
	}
	return shape
}

// Outline returns the collision sample points: every hull vertex followed by
// the midpoint of each edge.
func Outline(p Params, pos core.Vec2, heading float64) []core.Vec2 {
	hull := Hull(p, pos, heading)
	n := len(hull)
	out := make([]core.Vec2, 0, n*2)
	out = append(out, hull...)
	for i := range hull {
		out = append(out, hull[i].Lerp(hull[(i+1)%n], 0.5))
	}
	return out
}
