// Package ball advances the moving circles and resolves their axis-aligned
// bounces against the board.
package ball

import (
	"github.com/MansourDch/jezzball-clone/board"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/vmath"
)

// Ball is a moving circle. Vel is added to Pos once per tick
type Ball struct {
	Pos    core.Point
	Vel    core.Point
	Radius float64
}

// Bounds returns the ball's bounding box
func (b Ball) Bounds() core.Rect {
	return core.NewRect(b.Pos.X-b.Radius, b.Pos.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Spawn configures Reseed and Reposition
type Spawn struct {
	Radius   float64
	SpeedMin float64 // Per-axis velocity magnitude bounds
	SpeedMax float64
	Margin   float64 // Keep-out distance from region edges, on top of the radius
}

// Set is the fixed group of balls for a level
type Set struct {
	balls []Ball
}

// NewSet wraps balls into a Set
func NewSet(balls ...Ball) *Set {
	return &Set{balls: balls}
}

// Balls returns the live slice; callers must not retain it across ticks
func (s *Set) Balls() []Ball {
	return s.balls
}

// Len returns the ball count
func (s *Set) Len() int {
	return len(s.balls)
}

// Advance moves every ball by its velocity and reflects it off each boundary
// it crossed: the edges of its open region (which include the board edges),
// every completed split line, and the in-progress segment when active is non-nil.
// Each crossing is resolved independently. Returns the number of reflections
func (s *Set) Advance(b *board.Board, active *core.Segment) int {
	bounces := 0
	lines := b.Lines()
	for i := range s.balls {
		bl := &s.balls[i]
		prev := bl.Pos

		region, ok := b.RegionAt(prev)
		if !ok || region.Filled {
			region = board.Region{Rect: b.Bounds()}
		}

		bl.Pos = bl.Pos.Add(bl.Vel)

		bounces += reflectInside(bl, region.Rect)
		for _, l := range lines {
			bounces += reflectOffSegment(bl, prev, l)
		}
		if active != nil {
			bounces += reflectOffSegment(bl, prev, *active)
		}
	}
	return bounces
}

// reflectInside keeps the ball within r, flipping the velocity component of each crossed edge
func reflectInside(bl *Ball, r core.Rect) int {
	n := 0
	rad := bl.Radius

	if bl.Pos.X-rad < r.X {
		n += steer(&bl.Vel.X, 1)
	} else if bl.Pos.X+rad > r.Right() {
		n += steer(&bl.Vel.X, -1)
	}
	if bl.Pos.Y-rad < r.Y {
		n += steer(&bl.Vel.Y, 1)
	} else if bl.Pos.Y+rad > r.Bottom() {
		n += steer(&bl.Vel.Y, -1)
	}

	bl.Pos.X = clampAxis(bl.Pos.X, r.X, r.Right(), rad)
	bl.Pos.Y = clampAxis(bl.Pos.Y, r.Y, r.Bottom(), rad)
	return n
}

// steer points *v toward sign and returns 1 when that flipped it
func steer(v *float64, sign float64) int {
	want := sign * vmath.Abs(*v)
	if want == *v {
		return 0
	}
	*v = want
	return 1
}

// clampAxis keeps v at least rad away from both lo and hi, centering when the gap is too narrow
func clampAxis(v, lo, hi, rad float64) float64 {
	if hi-lo <= 2*rad {
		return (lo + hi) / 2
	}
	return vmath.Clamp(v, lo+rad, hi-rad)
}

// reflectOffSegment bounces the ball off a line it reached this tick coming from prev
func reflectOffSegment(bl *Ball, prev core.Point, seg core.Segment) int {
	rad := bl.Radius
	across := seg.Dir.Coord(bl.Pos)
	prevAcross := seg.Dir.Coord(prev)
	along := seg.Dir.Along(bl.Pos)

	if along+rad < seg.From || along-rad > seg.To {
		return 0
	}

	var side float64
	switch {
	case prevAcross < seg.Coord && across+rad > seg.Coord:
		side = -1
	case prevAcross > seg.Coord && across-rad < seg.Coord:
		side = 1
	default:
		return 0
	}

	clamped := seg.Coord + side*rad
	if seg.Dir == core.Horizontal {
		bl.Pos.Y = clamped
		return steer(&bl.Vel.Y, side)
	}
	bl.Pos.X = clamped
	return steer(&bl.Vel.X, side)
}

// Reseed replaces the set with n balls placed in open regions, chosen with
// probability proportional to area, away from their edges
func (s *Set) Reseed(n int, b *board.Board, rng *vmath.FastRand, sp Spawn) {
	s.balls = s.balls[:0]
	for i := 0; i < n; i++ {
		s.balls = append(s.balls, spawn(b, rng, sp))
	}
}

// Reposition moves ball i to a fresh random position and velocity
func (s *Set) Reposition(i int, b *board.Board, rng *vmath.FastRand, sp Spawn) bool {
	if i < 0 || i >= len(s.balls) {
		return false
	}
	s.balls[i] = spawn(b, rng, sp)
	return true
}

func spawn(b *board.Board, rng *vmath.FastRand, sp Spawn) Ball {
	region := pickOpenRegion(b, rng)
	area := region.Inset(sp.Radius + sp.Margin)
	return Ball{
		Pos:    vmath.RectRandomPoint(area, rng),
		Vel:    core.Point{X: rng.SignedRange(sp.SpeedMin, sp.SpeedMax), Y: rng.SignedRange(sp.SpeedMin, sp.SpeedMax)},
		Radius: sp.Radius,
	}
}

// pickOpenRegion returns an unfilled region weighted by area, or the board bounds when none is open
func pickOpenRegion(b *board.Board, rng *vmath.FastRand) core.Rect {
	var total float64
	regions := b.Regions()
	for _, r := range regions {
		if !r.Filled {
			total += r.Rect.Area()
		}
	}
	if total <= 0 {
		return b.Bounds()
	}

	target := rng.Float64() * total
	var last core.Rect
	for _, r := range regions {
		if r.Filled {
			continue
		}
		last = r.Rect
		target -= r.Rect.Area()
		if target < 0 {
			return r.Rect
		}
	}
	return last
}
