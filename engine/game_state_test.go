package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansourDch/jezzball-clone/ball"
	"github.com/MansourDch/jezzball-clone/board"
	"github.com/MansourDch/jezzball-clone/config"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/events"
	"github.com/MansourDch/jezzball-clone/level"
	"github.com/MansourDch/jezzball-clone/status"
	"github.com/MansourDch/jezzball-clone/vmath"
)

func newTestGame(t *testing.T, mutate func(*config.Config)) (*GameState, *events.EventQueue, *status.Registry) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Engine.Seed = 7
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())

	q := events.NewEventQueue()
	reg := status.NewRegistry()
	gs := NewGameState(cfg, q, reg, NewMockTimeProvider(epoch), nil)
	return gs, q, reg
}

// still places motionless balls so outcomes depend only on the split
func still(gs *GameState, at ...core.Point) {
	balls := make([]ball.Ball, len(at))
	for i, p := range at {
		balls[i] = ball.Ball{Pos: p, Radius: 5}
	}
	gs.balls = ball.NewSet(balls...)
}

func eventTypes(evs []events.GameEvent) []events.EventType {
	out := make([]events.EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func TestNewGameStateStarts(t *testing.T) {
	gs, q, _ := newTestGame(t, nil)

	want := Snapshot{
		Bounds:   core.NewRect(0, 0, 400, 400),
		Regions:  []board.Region{{Rect: core.NewRect(0, 0, 400, 400)}},
		Progress: level.State{Level: 1, Lives: 3},
	}
	got := gs.Snapshot()
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Snapshot{}, "Balls"), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Balls, level.BallCount(1))
	assert.Nil(t, q.Consume(), "construction emits nothing")
}

func TestSnapshotIsACopy(t *testing.T) {
	gs, _, _ := newTestGame(t, nil)
	snap := gs.Snapshot()
	snap.Balls[0].Pos = core.Point{X: -1, Y: -1}
	assert.NotEqual(t, core.Point{X: -1, Y: -1}, gs.Snapshot().Balls[0].Pos)
}

func TestFullLengthSplitWithBallInEachHalf(t *testing.T) {
	gs, q, reg := newTestGame(t, func(c *config.Config) { c.Split.Thickness = 0 })
	still(gs, core.Point{X: 100, Y: 200}, core.Point{X: 300, Y: 200})

	require.True(t, gs.BeginSplit(core.Point{X: 200, Y: 0}, core.Vertical))
	assert.False(t, gs.BeginSplit(core.Point{X: 50, Y: 50}, core.Horizontal), "one split at a time")

	for i := 0; i < 133; i++ {
		gs.Update()
	}
	require.True(t, gs.Snapshot().Growing)

	gs.Update()
	snap := gs.Snapshot()
	assert.False(t, snap.Growing)
	require.Len(t, snap.Regions, 2)
	for _, r := range snap.Regions {
		assert.Equal(t, 200.0, r.Rect.Width)
		assert.Equal(t, 400.0, r.Rect.Height)
	}
	assert.Equal(t, 0, snap.Progress.Filled)
	assert.Equal(t, 0, snap.Progress.Score)

	evs := q.Consume()
	assert.Equal(t, []events.EventType{events.EventSplitStarted, events.EventSplitCompleted}, eventTypes(evs))
	assert.Equal(t, events.SplitCompletedPayload{
		Line:   board.SplitLine{Dir: core.Vertical, Coord: 200, From: 0, To: 400},
		Filled: 0,
	}, evs[1].Payload)
	assert.Equal(t, int64(134), evs[1].Frame)
	assert.Equal(t, int64(1), reg.Int(status.KeySplitsStarted))
	assert.Equal(t, int64(1), reg.Int(status.KeySplitsDone))
}

func TestCompletedSplitScoresClaimedArea(t *testing.T) {
	gs, q, reg := newTestGame(t, func(c *config.Config) { c.Split.Speed = 50 })
	still(gs, core.Point{X: 300, Y: 300})

	require.True(t, gs.BeginSplit(core.Point{X: 200, Y: 100}, core.Horizontal))
	for i := 0; i < 4; i++ {
		gs.Update()
	}

	st := gs.Progress()
	assert.Equal(t, 25, st.Filled)
	assert.Equal(t, 10*1*25, st.Score)
	assert.Equal(t, 25.0, reg.Floats.Get(status.KeyFillPercent).Get())

	evs := q.Consume()
	require.Len(t, evs, 2)
	p := evs[1].Payload.(events.SplitCompletedPayload)
	assert.Equal(t, 1, p.Claimed)
	assert.Equal(t, 25, p.Filled)
}

func TestLevelUpOnThreshold(t *testing.T) {
	gs, q, reg := newTestGame(t, func(c *config.Config) {
		c.Split.Speed = 50
		c.Rules.FillThreshold = 20
	})
	still(gs, core.Point{X: 300, Y: 300})

	require.True(t, gs.BeginSplit(core.Point{X: 200, Y: 100}, core.Horizontal))
	for i := 0; i < 4; i++ {
		gs.Update()
	}

	st := gs.Progress()
	assert.Equal(t, level.State{Level: 2, Lives: 3, Filled: 0, Score: 250 + 100}, st)

	snap := gs.Snapshot()
	assert.Len(t, snap.Regions, 1, "board reset on level up")
	assert.Empty(t, snap.Lines)
	assert.Len(t, snap.Balls, level.BallCount(2))

	evs := q.Consume()
	require.Equal(t, []events.EventType{
		events.EventSplitStarted, events.EventSplitCompleted, events.EventLevelUp,
	}, eventTypes(evs))
	assert.Equal(t, events.ProgressPayload{Level: 2, Lives: 3, Score: 350}, evs[2].Payload)
	assert.Equal(t, int64(1), reg.Int(status.KeyLevelUps))
}

func TestFailedSplitCostsLifeAndKeepsBoard(t *testing.T) {
	gs, q, _ := newTestGame(t, func(c *config.Config) { c.Split.Thickness = 0 })
	still(gs, core.Point{X: 200, Y: 118})

	require.True(t, gs.BeginSplit(core.Point{X: 200, Y: 100}, core.Vertical))
	for i := 0; i < 5; i++ {
		gs.Update()
	}

	snap := gs.Snapshot()
	assert.False(t, snap.Growing)
	assert.Len(t, snap.Regions, 1)
	assert.Empty(t, snap.Lines)
	assert.Equal(t, level.State{Level: 1, Lives: 2}, snap.Progress)

	evs := q.Consume()
	require.Equal(t, []events.EventType{
		events.EventSplitStarted, events.EventSplitFailed, events.EventLifeLost,
	}, eventTypes(evs))
	assert.Equal(t, events.SplitPayload{Anchor: core.Point{X: 200, Y: 100}, Dir: core.Vertical, Ball: 0}, evs[1].Payload)
	assert.Equal(t, int64(5), evs[1].Frame, "collision on tick 5")
}

func TestLastLifeEndsGameOnce(t *testing.T) {
	gs, q, reg := newTestGame(t, func(c *config.Config) {
		c.Split.Thickness = 0
		c.Rules.StartingLives = 1
	})
	still(gs, core.Point{X: 200, Y: 118})

	require.True(t, gs.BeginSplit(core.Point{X: 200, Y: 100}, core.Vertical))
	for i := 0; i < 5; i++ {
		gs.Update()
	}

	evs := q.Consume()
	over := 0
	for _, ev := range evs {
		if ev.Type == events.EventGameOver {
			over++
			assert.Equal(t, events.GameOverPayload{Level: 1}, ev.Payload)
		}
	}
	assert.Equal(t, 1, over)
	assert.Equal(t, events.EventGameReset, evs[len(evs)-1].Type)
	assert.Equal(t, level.State{Level: 1, Lives: 1}, gs.Progress(), "full reset restores starting lives")
	assert.Equal(t, int64(1), reg.Int(status.KeyGameOvers))

	snap := gs.Snapshot()
	require.NotNil(t, snap.LastGameOver)
	assert.Len(t, snap.Balls, level.BallCount(1))

	gs.StartGame()
	assert.Nil(t, gs.Snapshot().LastGameOver)
}

func TestBeginSplitAutoPicksNearerEdge(t *testing.T) {
	gs, q, _ := newTestGame(t, nil)
	require.True(t, gs.BeginSplitAuto(core.Point{X: 10, Y: 200}))

	op, ok := gs.splitter.Operation()
	require.True(t, ok)
	assert.Equal(t, core.Horizontal, op.Dir)
	assert.Len(t, q.Consume(), 1)
}

func TestBeginSplitRejectsOutsideBoard(t *testing.T) {
	gs, q, _ := newTestGame(t, nil)
	assert.False(t, gs.BeginSplit(core.Point{X: 500, Y: 10}, core.Vertical))
	assert.Nil(t, q.Consume())
}

func TestApplyConfigWaitsForReset(t *testing.T) {
	gs, _, _ := newTestGame(t, nil)

	next := config.DefaultConfig()
	next.Board.Width = 300
	next.Rules.StartingLives = 5
	gs.ApplyConfig(next)

	assert.Equal(t, 400.0, gs.Snapshot().Bounds.Width, "running level keeps its board")

	gs.StartGame()
	snap := gs.Snapshot()
	assert.Equal(t, 300.0, snap.Bounds.Width)
	assert.Equal(t, 5, snap.Progress.Lives)
	for _, b := range snap.Balls {
		assert.LessOrEqual(t, b.Pos.X, 300.0)
	}
}

func TestSummary(t *testing.T) {
	gs, _, _ := newTestGame(t, nil)
	s := gs.Summary()
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, config.VariantWall, s.Variant)
}

// boardWasReset reports whether evs include a transition that clears the board
func boardWasReset(evs []events.GameEvent, policy level.LifeLossPolicy) bool {
	for _, ev := range evs {
		switch ev.Type {
		case events.EventLevelUp, events.EventGameReset:
			return true
		case events.EventLifeLost:
			if policy == level.PolicyResetBoard {
				return true
			}
		}
	}
	return false
}

func TestRandomPlayKeepsBoardInvariants(t *testing.T) {
	policies := []level.LifeLossPolicy{level.PolicyReseed, level.PolicyResetBoard, level.PolicyReposition}
	for _, policy := range policies {
		for seed := int64(1); seed <= 6; seed++ {
			gs, q, _ := newTestGame(t, func(c *config.Config) {
				c.Engine.Seed = seed
				c.Rules.LifeLoss = policy.String()
			})
			rng := vmath.NewFastRand(uint64(seed) * 31)
			bounds := gs.Board().Bounds()
			prevFill := gs.Board().PercentFilled()

			for frame := 0; frame < 4000; frame++ {
				if rng.Intn(15) == 0 {
					gs.BeginSplitAuto(core.Point{X: rng.Range(0, bounds.Width), Y: rng.Range(0, bounds.Height)})
				}
				gs.Update()

				b := gs.Board()
				require.NoError(t, b.Validate(), "%s seed %d frame %d", policy, seed, frame)
				for i, bl := range gs.Snapshot().Balls {
					r, ok := b.RegionAt(bl.Pos)
					require.True(t, ok, "%s seed %d frame %d: ball %d left the board at %+v", policy, seed, frame, i, bl.Pos)
					require.False(t, r.Filled, "%s seed %d frame %d: ball %d inside claimed area at %+v", policy, seed, frame, i, bl.Pos)
				}

				fill := b.PercentFilled()
				require.LessOrEqual(t, fill, 100)
				if !boardWasReset(q.Consume(), policy) {
					require.GreaterOrEqual(t, fill, prevFill, "%s seed %d frame %d: fill went down within a level", policy, seed, frame)
				}
				prevFill = fill
			}
		}
	}
}
