package render

import (
	"math"

	"github.com/MansourDch/jezzball-clone/core"
)

// cellAspect is the height of a terminal cell in widths
const cellAspect = 2.0

// Viewport maps world coordinates onto a block of terminal cells
type Viewport struct {
	X, Y       int // Top-left cell of the field, inside the border
	Cols, Rows int
	World      core.Rect
}

// Fit sizes the largest aspect-correct viewport for world inside an area of
// w×h cells, leaving top rows for the HUD and one cell of border on each side
func Fit(world core.Rect, w, h, top int) Viewport {
	availCols := max(w-2, 1)
	availRows := max(h-top-2, 1)

	// Columns needed to show availRows with square world units
	cols := int(math.Round(float64(availRows) * cellAspect * world.Width / world.Height))
	rows := availRows
	if cols > availCols {
		cols = availCols
		rows = max(int(math.Round(float64(cols)/cellAspect*world.Height/world.Width)), 1)
	}
	cols = max(cols, 1)

	return Viewport{
		X:     (w - cols) / 2,
		Y:     top + 1,
		Cols:  cols,
		Rows:  rows,
		World: world,
	}
}

// ToCell returns the cell holding world point p, clamped to the viewport
func (v Viewport) ToCell(p core.Point) (int, int) {
	cx := int(math.Floor((p.X - v.World.X) / v.World.Width * float64(v.Cols)))
	cy := int(math.Floor((p.Y - v.World.Y) / v.World.Height * float64(v.Rows)))
	return v.X + min(max(cx, 0), v.Cols-1), v.Y + min(max(cy, 0), v.Rows-1)
}

// ToWorld returns the world point at the center of cell (x, y) and whether
// the cell lies inside the viewport
func (v Viewport) ToWorld(x, y int) (core.Point, bool) {
	cx, cy := x-v.X, y-v.Y
	if cx < 0 || cy < 0 || cx >= v.Cols || cy >= v.Rows {
		return core.Point{}, false
	}
	return core.Point{
		X: v.World.X + (float64(cx)+0.5)/float64(v.Cols)*v.World.Width,
		Y: v.World.Y + (float64(cy)+0.5)/float64(v.Rows)*v.World.Height,
	}, true
}

// CellSize is the world extent of one cell
func (v Viewport) CellSize() (float64, float64) {
	return v.World.Width / float64(v.Cols), v.World.Height / float64(v.Rows)
}
