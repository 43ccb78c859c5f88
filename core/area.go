package core

// Point is a position or a velocity in board units
type Point struct {
	X, Y float64
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect is an axis-aligned rectangle in board units
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// NewRect creates a rectangle from its top-left corner and dimensions
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns width * height
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r, edges inclusive
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Overlaps reports whether the interiors of r and o intersect
// Rectangles sharing only an edge do not overlap
func (r Rect) Overlaps(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Inset shrinks r by m on every side, collapsing to the center when too small
func (r Rect) Inset(m float64) Rect {
	out := r
	if r.Width > 2*m {
		out.X += m
		out.Width -= 2 * m
	} else {
		out.X += r.Width / 2
		out.Width = 0
	}
	if r.Height > 2*m {
		out.Y += m
		out.Height -= 2 * m
	} else {
		out.Y += r.Height / 2
		out.Height = 0
	}
	return out
}

// Span returns the [lo, hi] extent of r along the axis a line of direction d grows on
func (r Rect) Span(d Direction) (lo, hi float64) {
	if d == Horizontal {
		return r.X, r.Right()
	}
	return r.Y, r.Bottom()
}

// Across returns the [lo, hi] extent of r on the axis a line of direction d cuts
func (r Rect) Across(d Direction) (lo, hi float64) {
	if d == Horizontal {
		return r.Y, r.Bottom()
	}
	return r.X, r.Right()
}
