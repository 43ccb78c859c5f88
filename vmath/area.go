package vmath

import "github.com/MansourDch/jezzball-clone/core"

// RectRandomPoint returns a uniform random point within r
func RectRandomPoint(r core.Rect, rng *FastRand) core.Point {
	return core.Point{
		X: r.X + rng.Float64()*r.Width,
		Y: r.Y + rng.Float64()*r.Height,
	}
}

// CircleIntersectsSegment reports whether a circle touches a segment drawn with
// the given thickness. Touching counts as intersecting
func CircleIntersectsSegment(c core.Point, radius float64, s core.Segment, thickness float64) bool {
	var along, across float64
	if s.Dir == core.Horizontal {
		along, across = c.X, c.Y
	} else {
		along, across = c.Y, c.X
	}

	// Distance from circle center to the closest point of the segment
	dAlong := 0.0
	if along < s.From {
		dAlong = s.From - along
	} else if along > s.To {
		dAlong = along - s.To
	}
	dAcross := Abs(across-s.Coord) - thickness/2
	if dAcross < 0 {
		dAcross = 0
	}

	return dAlong*dAlong+dAcross*dAcross <= radius*radius
}
