package ball

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansourDch/jezzball-clone/board"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/vmath"
)

func TestAdvanceMovesByVelocity(t *testing.T) {
	b := board.New(400, 400)
	s := NewSet(Ball{Pos: core.Point{X: 100, Y: 100}, Vel: core.Point{X: 3, Y: -2}, Radius: 5})

	bounces := s.Advance(b, nil)
	assert.Zero(t, bounces)
	assert.Equal(t, core.Point{X: 103, Y: 98}, s.Balls()[0].Pos)
}

func TestAdvanceReflectsOffBoardEdges(t *testing.T) {
	b := board.New(400, 400)
	s := NewSet(
		Ball{Pos: core.Point{X: 6, Y: 200}, Vel: core.Point{X: -4, Y: 0}, Radius: 5},
		Ball{Pos: core.Point{X: 200, Y: 393}, Vel: core.Point{X: 0, Y: 4}, Radius: 5},
		Ball{Pos: core.Point{X: 394, Y: 6}, Vel: core.Point{X: 3, Y: -3}, Radius: 5},
	)

	bounces := s.Advance(b, nil)
	assert.Equal(t, 4, bounces, "corner ball bounces on both axes")

	balls := s.Balls()
	assert.Equal(t, core.Point{X: 4, Y: 0}, balls[0].Vel)
	assert.Equal(t, 5.0, balls[0].Pos.X, "clamped to touch the edge")

	assert.Equal(t, core.Point{X: 0, Y: -4}, balls[1].Vel)
	assert.Equal(t, 395.0, balls[1].Pos.Y)

	assert.Equal(t, core.Point{X: -3, Y: 3}, balls[2].Vel)
	assert.Equal(t, core.Point{X: 395, Y: 5}, balls[2].Pos)
}

func TestAdvanceStaysInOpenRegion(t *testing.T) {
	b := board.New(400, 400)
	pieces := b.ApplySplit(200, core.Vertical)
	require.True(t, b.MarkFilled(pieces[1].Rect))

	s := NewSet(Ball{Pos: core.Point{X: 193, Y: 100}, Vel: core.Point{X: 5, Y: 1}, Radius: 5})
	for i := 0; i < 500; i++ {
		s.Advance(b, nil)
		bl := s.Balls()[0]
		r, ok := b.RegionAt(bl.Pos)
		require.True(t, ok)
		require.False(t, r.Filled, "tick %d: ball entered claimed area at %+v", i, bl.Pos)
		require.LessOrEqual(t, bl.Pos.X+bl.Radius, 200.0)
	}
}

func TestAdvanceReflectsOffCompletedLineBetweenOpenRegions(t *testing.T) {
	b := board.New(400, 400)
	b.ApplySplit(200, core.Horizontal)

	s := NewSet(Ball{Pos: core.Point{X: 100, Y: 192}, Vel: core.Point{X: 0, Y: 6}, Radius: 5})
	s.Advance(b, nil)

	bl := s.Balls()[0]
	assert.Equal(t, -6.0, bl.Vel.Y)
	assert.Equal(t, 195.0, bl.Pos.Y)
}

func TestAdvanceReflectsOffActiveSegment(t *testing.T) {
	b := board.New(400, 400)
	active := core.Segment{Dir: core.Vertical, Coord: 150, From: 50, To: 250}

	hit := NewSet(Ball{Pos: core.Point{X: 142, Y: 100}, Vel: core.Point{X: 4, Y: 0}, Radius: 5})
	assert.Equal(t, 1, hit.Advance(b, &active))
	assert.Equal(t, -4.0, hit.Balls()[0].Vel.X)
	assert.Equal(t, 145.0, hit.Balls()[0].Pos.X)

	// Passes beyond the growing tip untouched
	miss := NewSet(Ball{Pos: core.Point{X: 142, Y: 300}, Vel: core.Point{X: 4, Y: 0}, Radius: 5})
	assert.Zero(t, miss.Advance(b, &active))
	assert.Equal(t, 146.0, miss.Balls()[0].Pos.X)
}

func TestReseedPlacesBallsInOpenRegions(t *testing.T) {
	b := board.New(400, 400)
	pieces := b.ApplySplit(300, core.Vertical)
	require.True(t, b.MarkFilled(pieces[0].Rect))

	rng := vmath.NewFastRand(11)
	sp := Spawn{Radius: 5, SpeedMin: 2, SpeedMax: 6, Margin: 5}

	s := NewSet()
	s.Reseed(5, b, rng, sp)
	require.Equal(t, 5, s.Len())
	for _, bl := range s.Balls() {
		assert.GreaterOrEqual(t, bl.Pos.X, 310.0)
		assert.LessOrEqual(t, bl.Pos.X, 390.0)
		assert.GreaterOrEqual(t, vmath.Abs(bl.Vel.X), 2.0)
		assert.Less(t, vmath.Abs(bl.Vel.Y), 6.0)
		assert.Equal(t, 5.0, bl.Radius)
	}

	s.Reseed(3, b, rng, sp)
	assert.Equal(t, 3, s.Len())
}

func TestReposition(t *testing.T) {
	b := board.New(400, 400)
	rng := vmath.NewFastRand(5)
	sp := Spawn{Radius: 5, SpeedMin: 2, SpeedMax: 6}

	s := NewSet(Ball{Pos: core.Point{X: 1, Y: 1}, Radius: 5})
	require.True(t, s.Reposition(0, b, rng, sp))
	assert.NotEqual(t, core.Point{X: 1, Y: 1}, s.Balls()[0].Pos)
	assert.False(t, s.Reposition(3, b, rng, sp))
}
