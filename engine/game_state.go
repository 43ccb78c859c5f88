package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/MansourDch/jezzball-clone/ball"
	"github.com/MansourDch/jezzball-clone/board"
	"github.com/MansourDch/jezzball-clone/config"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/events"
	"github.com/MansourDch/jezzball-clone/level"
	"github.com/MansourDch/jezzball-clone/share"
	"github.com/MansourDch/jezzball-clone/splitter"
	"github.com/MansourDch/jezzball-clone/status"
	"github.com/MansourDch/jezzball-clone/vmath"
)

// GameState owns the wall game: board, balls, splitter and level controller.
// Not safe for concurrent use; the scheduler goroutine is the only caller
type GameState struct {
	cfg     *config.Config
	pending *config.Config // Applied at the next board reset

	board    *board.Board
	balls    *ball.Set
	splitter *splitter.Splitter
	level    *level.Controller
	spawn    ball.Spawn
	rng      *vmath.FastRand

	queue  *events.EventQueue
	clock  TimeProvider
	logger *zap.Logger
	frame  int64

	lastGameOver *events.GameOverPayload

	// Cached metric pointers
	statStarted   *atomic.Int64
	statDone      *atomic.Int64
	statFailed    *atomic.Int64
	statBounces   *atomic.Int64
	statLevelUps  *atomic.Int64
	statGameOvers *atomic.Int64
	statFill      *status.AtomicFloat
}

// Snapshot is a read-only copy of everything the renderer draws
type Snapshot struct {
	Frame        int64
	Bounds       core.Rect
	Regions      []board.Region
	Lines        []board.SplitLine
	Balls        []ball.Ball
	Active       core.Segment
	Growing      bool
	Progress     level.State
	LastGameOver *events.GameOverPayload
}

// NewGameState builds a started game from a validated config
func NewGameState(cfg *config.Config, queue *events.EventQueue, reg *status.Registry, clock TimeProvider, logger *zap.Logger) *GameState {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gs := &GameState{
		cfg:           cfg,
		board:         board.New(cfg.Board.Width, cfg.Board.Height),
		balls:         ball.NewSet(),
		splitter:      splitter.New(cfg.Split.Speed, cfg.Split.Thickness),
		spawn:         cfg.Spawn(),
		rng:           vmath.NewFastRand(uint64(seed)),
		queue:         queue,
		clock:         clock,
		logger:        logger.Named("game"),
		statStarted:   reg.Ints.Get(status.KeySplitsStarted),
		statDone:      reg.Ints.Get(status.KeySplitsDone),
		statFailed:    reg.Ints.Get(status.KeySplitsFailed),
		statBounces:   reg.Ints.Get(status.KeyBounces),
		statLevelUps:  reg.Ints.Get(status.KeyLevelUps),
		statGameOvers: reg.Ints.Get(status.KeyGameOvers),
		statFill:      reg.Floats.Get(status.KeyFillPercent),
	}
	gs.level = level.New(cfg.LevelConfig(), gs)
	gs.level.Start()
	return gs
}

// ===== level.Arena =====

// ResetBoard clears the board and drops any growing line. A pending config
// takes effect here
func (gs *GameState) ResetBoard() {
	gs.splitter.Cancel()
	if gs.pending != nil {
		gs.adopt(gs.pending)
		gs.pending = nil
	}
	gs.board.Reset()
	gs.statFill.Set(0)
}

// ReseedBalls replaces the ball set with n fresh balls
func (gs *GameState) ReseedBalls(n int) {
	gs.balls.Reseed(n, gs.board, gs.rng, gs.spawn)
}

// RepositionBall moves ball i to a random open spot
func (gs *GameState) RepositionBall(i int) {
	gs.balls.Reposition(i, gs.board, gs.rng, gs.spawn)
}

func (gs *GameState) adopt(cfg *config.Config) {
	gs.cfg = cfg
	if b := gs.board.Bounds(); b.Width != cfg.Board.Width || b.Height != cfg.Board.Height {
		gs.board = board.New(cfg.Board.Width, cfg.Board.Height)
	}
	gs.splitter = splitter.New(cfg.Split.Speed, cfg.Split.Thickness)
	gs.spawn = cfg.Spawn()
	gs.level.SetConfig(cfg.LevelConfig())
	gs.logger.Info("config applied",
		zap.Float64("split_speed", cfg.Split.Speed),
		zap.String("life_loss", cfg.Rules.LifeLoss),
	)
}

// ===== Commands =====

// ApplyConfig stages cfg for the next board reset so a running level keeps its rules
func (gs *GameState) ApplyConfig(cfg *config.Config) {
	gs.pending = cfg
}

// StartGame performs a full reset to level 1
func (gs *GameState) StartGame() {
	gs.level.Start()
	gs.lastGameOver = nil
	gs.emit(events.EventGameReset, nil)
	gs.logger.Info("game started")
}

// BeginSplit starts a split at anchor. Returns false when the splitter is busy
// or the anchor is not in an open region
func (gs *GameState) BeginSplit(anchor core.Point, dir core.Direction) bool {
	if !gs.splitter.Begin(gs.board, anchor, dir) {
		return false
	}
	gs.statStarted.Add(1)
	gs.emit(events.EventSplitStarted, events.SplitPayload{Anchor: anchor, Dir: dir, Ball: -1})
	return true
}

// BeginSplitAuto starts a split toward the nearer board edge
func (gs *GameState) BeginSplitAuto(anchor core.Point) bool {
	return gs.BeginSplit(anchor, splitter.AutoDirection(anchor, gs.board.Bounds()))
}

// ===== Frame =====

// Update advances one frame: balls move, the split grows, then the board and
// level react to the split outcome
func (gs *GameState) Update() {
	gs.frame++

	var active *core.Segment
	if seg, ok := gs.splitter.Active(gs.board); ok {
		active = &seg
	}
	if n := gs.balls.Advance(gs.board, active); n > 0 {
		gs.statBounces.Add(int64(n))
		gs.emit(events.EventBallBounce, events.BouncePayload{Count: n})
	}

	op, _ := gs.splitter.Operation()
	res := gs.splitter.Tick(gs.board, gs.balls.Balls())
	switch res.State {
	case splitter.StateCompleted:
		gs.onSplitCompleted(res)
	case splitter.StateFailed:
		gs.onSplitFailed(op, res.Ball)
	}
}

func (gs *GameState) onSplitCompleted(res splitter.Result) {
	gs.statDone.Add(1)
	prior := gs.level.State()
	pct := gs.board.PercentFilled()
	gs.statFill.Set(float64(pct))

	if gained := pct - prior.Filled; gained > 0 {
		gs.level.AddScore(10 * prior.Level * gained)
	}
	gs.emit(events.EventSplitCompleted, events.SplitCompletedPayload{
		Line:    res.Line,
		Claimed: len(res.Filled),
		Filled:  pct,
	})

	if gs.level.OnFillPercentChanged(pct) == level.OutcomeLevelUp {
		st := gs.level.State()
		gs.statLevelUps.Add(1)
		gs.emit(events.EventLevelUp, events.ProgressPayload{Level: st.Level, Lives: st.Lives, Score: st.Score})
		gs.logger.Info("level up", zap.Int("level", st.Level), zap.Int("score", st.Score))
	}
}

func (gs *GameState) onSplitFailed(op splitter.Operation, ballIdx int) {
	gs.statFailed.Add(1)
	prior := gs.level.State()
	gs.emit(events.EventSplitFailed, events.SplitPayload{Anchor: op.Anchor, Dir: op.Dir, Ball: ballIdx})

	switch gs.level.OnSplitFailed(ballIdx) {
	case level.OutcomeGameOver:
		gs.statGameOvers.Add(1)
		over := events.GameOverPayload{FinalScore: prior.Score, Level: prior.Level, Filled: prior.Filled}
		gs.lastGameOver = &over
		gs.emit(events.EventGameOver, over)
		gs.emit(events.EventGameReset, nil)
		gs.statFill.Set(0)
		gs.logger.Info("game over", zap.Int("score", prior.Score), zap.Int("level", prior.Level))
	case level.OutcomeLifeLost:
		st := gs.level.State()
		gs.statFill.Set(float64(st.Filled))
		gs.emit(events.EventLifeLost, events.ProgressPayload{Level: st.Level, Lives: st.Lives, Score: st.Score})
	}
}

func (gs *GameState) emit(t events.EventType, payload any) {
	gs.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     gs.frame,
		Timestamp: gs.clock.Now(),
	})
}

// ===== Readers =====

// Board exposes the board for adapters that map screen cells to world units
func (gs *GameState) Board() *board.Board {
	return gs.board
}

// Progress returns level, lives, fill and score
func (gs *GameState) Progress() level.State {
	return gs.level.State()
}

// Snapshot copies the drawable state
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Frame:        gs.frame,
		Bounds:       gs.board.Bounds(),
		Regions:      gs.board.Regions(),
		Lines:        gs.board.Lines(),
		Balls:        append([]ball.Ball(nil), gs.balls.Balls()...),
		Progress:     gs.level.State(),
		LastGameOver: gs.lastGameOver,
	}
	s.Active, s.Growing = gs.splitter.Active(gs.board)
	return s
}

// Summary is the share-ready standing
func (gs *GameState) Summary() share.Summary {
	st := gs.level.State()
	return share.Summary{
		Score:   st.Score,
		Level:   st.Level,
		Lives:   st.Lives,
		Filled:  st.Filled,
		Variant: config.VariantWall,
	}
}
