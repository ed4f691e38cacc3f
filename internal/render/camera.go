package render

import (
	"math"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// Camera projects world coordinates onto a grid of terminal cells,
// centred on a world point.
type Camera struct {
	Center         core.Vec2
	UnitsPerColumn float64
	UnitsPerRow    float64
	Cols, Rows     int
}

// ToWorld returns the world position at the centre of cell (x, y).
func (c Camera) ToWorld(x, y int) core.Vec2 {
	return core.V(
		c.Center.X+(float64(x)+0.5-float64(c.Cols)/2)*c.UnitsPerColumn,
		c.Center.Y+(float64(y)+0.5-float64(c.Rows)/2)*c.UnitsPerRow,
	)
}

// ToCell returns the cell containing p and whether it is on screen.
func (c Camera) ToCell(p core.Vec2) (int, int, bool) {
	x := int(math.Floor((p.X-c.Center.X)/c.UnitsPerColumn + float64(c.Cols)/2))
	y := int(math.Floor((p.Y-c.Center.Y)/c.UnitsPerRow + float64(c.Rows)/2))
	return x, y, x >= 0 && x < c.Cols && y >= 0 && y < c.Rows
}

// Visible reports whether a circle intersects the viewport.
func (c Camera) Visible(center core.Vec2, radius float64) bool {
	halfW := float64(c.Cols) / 2 * c.UnitsPerColumn
	halfH := float64(c.Rows) / 2 * c.UnitsPerRow
	return math.Abs(center.X-c.Center.X) <= halfW+radius &&
		math.Abs(center.Y-c.Center.Y) <= halfH+radius
}
