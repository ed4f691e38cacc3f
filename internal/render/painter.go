// Package render turns a simulation snapshot into terminal cells.
// It never mutates the snapshot and owns no simulation state.
package render

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/boat"
	"github.com/vovakirdan/tui-archipelago/internal/collision"
	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/sim"
	"github.com/vovakirdan/tui-archipelago/internal/world"
)

// ShallowsWidth is how far past the coastline the water is drawn as shallows.
const ShallowsWidth = 40.0

// Wave height thresholds for the two crest glyphs.
const (
	crestHigh = 2.5
	crestLow  = 1.2
)

var headingArrows = []rune("↑↗→↘↓↙←↖")

var featureGlyphs = map[world.FeatureKind]struct {
	r rune
	c core.Color
}{
	world.FeatureCliffs:  {'▲', core.ColorCliff},
	world.FeatureTrees:   {'♣', core.ColorTree},
	world.FeatureStreams: {'≈', core.ColorStream},
	world.FeatureMeadows: {'"', core.ColorMeadow},
}

// Options controls how the world is projected.
type Options struct {
	UnitsPerColumn float64
	UnitsPerRow    float64
	Shimmer        bool
}

// DefaultOptions matches a terminal cell roughly twice as tall as it is wide.
func DefaultOptions() Options {
	return Options{UnitsPerColumn: 8, UnitsPerRow: 16, Shimmer: true}
}

// Renderer paints snapshots onto a core.Screen.
type Renderer struct {
	opts    Options
	shimmer *Shimmer
}

// New creates a renderer. Non-positive scales fall back to the defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if !(opts.UnitsPerColumn > 0) {
		opts.UnitsPerColumn = def.UnitsPerColumn
	}
	if !(opts.UnitsPerRow > 0) {
		opts.UnitsPerRow = def.UnitsPerRow
	}
	return &Renderer{opts: opts, shimmer: NewShimmer()}
}

// Camera returns the viewport for scr centred on a world point.
func (r *Renderer) Camera(scr *core.Screen, center core.Vec2) Camera {
	return Camera{
		Center:         center,
		UnitsPerColumn: r.opts.UnitsPerColumn,
		UnitsPerRow:    r.opts.UnitsPerRow,
		Cols:           scr.Width(),
		Rows:           scr.Height(),
	}
}

// Paint draws the snapshot with the camera following the boat.
func (r *Renderer) Paint(scr *core.Screen, snap sim.Snapshot, p boat.Params) {
	r.PaintAt(scr, snap, p, snap.Boat.Pos)
}

// PaintAt draws the snapshot with the camera centred on center.
func (r *Renderer) PaintAt(scr *core.Screen, snap sim.Snapshot, p boat.Params, center core.Vec2) {
	scr.Clear()
	if snap.World == nil || scr.Width() == 0 || scr.Height() == 0 {
		return
	}
	cam := r.Camera(scr, center)

	islands := visibleIslands(cam, snap.World.Islands)
	waves := visibleWaves(cam, snap.Waves)
	width, height := snap.World.Bounds()

	for y := 0; y < cam.Rows; y++ {
		for x := 0; x < cam.Cols; x++ {
			wp := cam.ToWorld(x, y)
			if wp.X < 0 || wp.Y < 0 || wp.X >= width || wp.Y >= height {
				scr.SetCell(x, y, ' ', core.ColorDeepWater)
				continue
			}
			if ch, c, ok := landCell(wp, islands); ok {
				scr.SetCell(x, y, ch, c)
				continue
			}
			ch, c := r.waterCell(wp, waves, snap.Time)
			scr.SetCell(x, y, ch, c)
		}
	}

	for _, is := range islands {
		for _, kind := range world.FeatureKinds {
			g := featureGlyphs[kind]
			for _, local := range snap.World.Features.Lookup(is.ID, kind) {
				if x, y, ok := cam.ToCell(is.Center.Add(local)); ok {
					scr.SetCell(x, y, g.r, g.c)
				}
			}
		}
	}

	paintBoat(scr, cam, snap.Boat, p)
}

func visibleIslands(cam Camera, all []world.Island) []*world.Island {
	var out []*world.Island
	for i := range all {
		if cam.Visible(all[i].Center, all[i].BoundRadius()+ShallowsWidth) {
			out = append(out, &all[i])
		}
	}
	return out
}

func visibleWaves(cam Camera, all []world.Wave) []world.Wave {
	var out []world.Wave
	for _, w := range all {
		if cam.Visible(w.Pos, w.Wavelength*3) {
			out = append(out, w)
		}
	}
	return out
}

// landCell classifies a world point against the island bands.
func landCell(wp core.Vec2, islands []*world.Island) (rune, core.Color, bool) {
	shallow := false
	for _, is := range islands {
		local := is.ToLocal(wp)
		d := local.Len()
		if d > is.BoundRadius()+ShallowsWidth {
			continue
		}
		angle := math.Atan2(local.Y, local.X)
		coast := is.Coast.RadiusAt(angle)
		switch {
		case d <= is.Canopy.RadiusAt(angle):
			return '▓', core.ColorCanopy, true
		case d <= is.Grass.RadiusAt(angle):
			return '▒', core.ColorGrass, true
		case d <= is.Beach.RadiusAt(angle):
			return '░', core.ColorBeach, true
		case d <= coast:
			return '░', core.ColorCoast, true
		case d <= coast+ShallowsWidth:
			shallow = true
		}
	}
	if shallow {
		return '░', core.ColorShallows, true
	}
	return 0, 0, false
}

func (r *Renderer) waterCell(wp core.Vec2, waves []world.Wave, t float64) (rune, core.Color) {
	h := 0.0
	for _, w := range waves {
		h += w.Height(wp)
	}
	switch {
	case h > crestHigh:
		return '~', core.ColorWave
	case h > crestLow:
		return '-', core.ColorWave
	}
	if r.opts.Shimmer {
		if g := r.shimmer.Glint(wp.X, wp.Y, t); g != 0 {
			return g, core.ColorWave
		}
		if r.shimmer.At(wp.X, wp.Y, t) < -0.45 {
			return ' ', core.ColorDeepWater
		}
	}
	return ' ', core.ColorWater
}

// HeadingArrow returns the 8-way arrow closest to a compass heading.
func HeadingArrow(heading float64) rune {
	i := int(math.Round(core.WrapAngle(heading)/(math.Pi/4))) % len(headingArrows)
	return headingArrows[i]
}

func paintBoat(scr *core.Screen, cam Camera, s boat.State, p boat.Params) {
	fwd := boat.Forward(s.Heading)
	side := core.V(-fwd.Y, fwd.X)

	// wake trails behind the stern and grows with speed
	trail := int(math.Min(4, s.Speed/20))
	for k := 1; k <= trail; k++ {
		sway := math.Sin(s.WakePhase+float64(k)) * p.HullBeam * 0.4
		at := s.Pos.Sub(fwd.Scale(p.HullLength + float64(k)*cam.UnitsPerColumn)).Add(side.Scale(sway))
		if x, y, ok := cam.ToCell(at); ok {
			scr.SetCell(x, y, '~', core.ColorWake)
		}
	}

	hull := boat.Hull(p, s.Pos, s.Heading)
	for y := 0; y < cam.Rows; y++ {
		for x := 0; x < cam.Cols; x++ {
			wp := cam.ToWorld(x, y)
			if wp.Dist(s.Pos) > p.HullLength+cam.UnitsPerRow {
				continue
			}
			if collision.PointInPolygon(wp, hull) {
				scr.SetCell(x, y, '■', core.ColorHull)
			}
		}
	}

	if s.Anchor != boat.Stowed {
		stern := s.Pos.Sub(fwd.Scale(p.HullLength * 0.8))
		if x, y, ok := cam.ToCell(stern); ok {
			scr.SetCell(x, y, '‡', core.ColorAnchor)
		}
	}

	if x, y, ok := cam.ToCell(s.Pos); ok {
		scr.SetCell(x, y, HeadingArrow(s.Heading), core.ColorSail)
	}
}
