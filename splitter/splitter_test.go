package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansourDch/jezzball-clone/ball"
	"github.com/MansourDch/jezzball-clone/board"
	"github.com/MansourDch/jezzball-clone/core"
)

func TestBeginOnlyFromIdle(t *testing.T) {
	b := board.New(400, 400)
	s := New(3, 0)

	require.Equal(t, StateIdle, s.State())
	require.True(t, s.Begin(b, core.Point{X: 200, Y: 100}, core.Vertical))
	assert.Equal(t, StateGrowing, s.State())
	before, _ := s.Operation()

	assert.False(t, s.Begin(b, core.Point{X: 50, Y: 50}, core.Horizontal), "second begin is a no-op")
	after, active := s.Operation()
	assert.True(t, active)
	assert.Equal(t, before, after)
}

func TestBeginRejectsOutsideAndClaimedAnchors(t *testing.T) {
	b := board.New(400, 400)
	pieces := b.ApplySplit(100, core.Vertical)
	require.True(t, b.MarkFilled(pieces[0].Rect))

	s := New(3, 0)
	assert.False(t, s.Begin(b, core.Point{X: 50, Y: 50}, core.Vertical))
	assert.False(t, s.Begin(b, core.Point{X: 500, Y: 50}, core.Vertical))
	assert.Equal(t, StateIdle, s.State())
}

func TestBeginRejectsLinesThatCutNothing(t *testing.T) {
	b := board.New(400, 400)
	s := New(3, 0)

	assert.False(t, s.Begin(b, core.Point{X: 0, Y: 200}, core.Vertical), "left board edge")
	assert.False(t, s.Begin(b, core.Point{X: 200, Y: 0}, core.Horizontal), "top board edge")

	b.ApplySplit(200, core.Vertical)
	assert.False(t, s.Begin(b, core.Point{X: 200, Y: 100}, core.Vertical), "along an existing line")
	assert.Equal(t, StateIdle, s.State())
	assert.Len(t, b.Lines(), 1)

	assert.True(t, s.Begin(b, core.Point{X: 200, Y: 100}, core.Horizontal), "across an existing line")
}

func TestTickWhileIdle(t *testing.T) {
	b := board.New(400, 400)
	res := New(3, 0).Tick(b, nil)
	assert.Equal(t, StateIdle, res.State)
	assert.Equal(t, -1, res.Ball)
}

func TestGrowthFromEdgeCompletesAfter134Ticks(t *testing.T) {
	b := board.New(400, 400)
	s := New(3, 0)
	balls := []ball.Ball{
		{Pos: core.Point{X: 100, Y: 200}, Radius: 5},
		{Pos: core.Point{X: 300, Y: 200}, Radius: 5},
	}

	require.True(t, s.Begin(b, core.Point{X: 200, Y: 0}, core.Vertical))

	var res Result
	for tick := 1; tick <= 133; tick++ {
		res = s.Tick(b, balls)
		require.Equal(t, StateGrowing, res.State, "tick %d", tick)
	}
	seg, ok := s.Active(b)
	require.True(t, ok)
	assert.Equal(t, 0.0, seg.From)
	assert.Equal(t, 399.0, seg.To)

	res = s.Tick(b, balls)
	require.Equal(t, StateCompleted, res.State)
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, board.SplitLine{Dir: core.Vertical, Coord: 200, From: 0, To: 400}, res.Line)

	regions := b.Regions()
	require.Len(t, regions, 2)
	for _, r := range regions {
		assert.Equal(t, 200.0, r.Rect.Width)
		assert.Equal(t, 400.0, r.Rect.Height)
		assert.False(t, r.Filled, "both halves hold a ball")
	}
	assert.Len(t, res.Pieces, 2)
	assert.Empty(t, res.Filled)
	assert.Equal(t, 0, b.PercentFilled())
	require.NoError(t, b.Validate())
}

func TestCompletionClaimsBallFreePieces(t *testing.T) {
	b := board.New(400, 400)
	s := New(50, 0)
	balls := []ball.Ball{{Pos: core.Point{X: 300, Y: 300}, Radius: 5}}

	require.True(t, s.Begin(b, core.Point{X: 200, Y: 100}, core.Horizontal))
	var res Result
	for i := 0; i < 10 && res.State != StateCompleted; i++ {
		res = s.Tick(b, balls)
	}
	require.Equal(t, StateCompleted, res.State)
	require.Len(t, res.Filled, 1)
	assert.Equal(t, core.NewRect(0, 0, 400, 100), res.Filled[0])
	assert.Equal(t, 25, b.PercentFilled())
}

func TestCollisionFailsWithoutBoardChange(t *testing.T) {
	b := board.New(400, 400)
	s := New(3, 0)
	// Ball sits 10 units below the anchor on the line's axis
	balls := []ball.Ball{{Pos: core.Point{X: 200, Y: 115}, Radius: 5}}

	require.True(t, s.Begin(b, core.Point{X: 200, Y: 100}, core.Vertical))
	before := b.Regions()

	var res Result
	ticks := 0
	for res.State != StateFailed {
		ticks++
		require.Less(t, ticks, 10)
		res = s.Tick(b, balls)
	}
	// Tip passes y=110, the top of the ball, on tick 4
	assert.Equal(t, 4, ticks)
	assert.Equal(t, 0, res.Ball)
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, before, b.Regions())
	assert.Empty(t, b.Lines())
}

func TestCancel(t *testing.T) {
	b := board.New(400, 400)
	s := New(3, 0)
	require.True(t, s.Begin(b, core.Point{X: 10, Y: 10}, core.Vertical))
	s.Cancel()
	assert.Equal(t, StateIdle, s.State())
	_, ok := s.Active(b)
	assert.False(t, ok)
}

func TestAutoDirection(t *testing.T) {
	bounds := core.NewRect(0, 0, 400, 300)
	assert.Equal(t, core.Horizontal, AutoDirection(core.Point{X: 20, Y: 150}, bounds), "near the left edge")
	assert.Equal(t, core.Horizontal, AutoDirection(core.Point{X: 390, Y: 150}, bounds), "near the right edge")
	assert.Equal(t, core.Vertical, AutoDirection(core.Point{X: 200, Y: 10}, bounds), "near the top edge")
	assert.Equal(t, core.Vertical, AutoDirection(core.Point{X: 200, Y: 280}, bounds), "near the bottom edge")
}
