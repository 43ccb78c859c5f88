// Package paddle is the breakout-style variant: one ball, one paddle, walls
// that bounce with a little random damping.
package paddle

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/MansourDch/jezzball-clone/ball"
	"github.com/MansourDch/jezzball-clone/config"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/events"
	"github.com/MansourDch/jezzball-clone/share"
	"github.com/MansourDch/jezzball-clone/status"
	"github.com/MansourDch/jezzball-clone/vmath"
)

const (
	// Step is how far one key press moves the paddle
	Step = 20.0
	// Thickness is the drawn paddle height
	Thickness = 6.0
	// BottomGap is the distance from the paddle top to the field bottom
	BottomGap = 8.0
	// HitPoints is awarded per paddle return
	HitPoints = 10
	// grabSlack widens the paddle for drag pickup
	grabSlack = 10.0
	// fallMargin is how far below the field a missed ball must drop
	fallMargin = 10.0
	// maxSpeed caps each velocity axis so repeated damping cannot run away
	maxSpeed = 8.0
	// ballRadius is fixed for the variant
	ballRadius = 5.0
)

// Clock supplies event timestamps
type Clock interface {
	Now() time.Time
}

// Snapshot is a read-only copy for rendering
type Snapshot struct {
	Bounds       core.Rect
	Paddle       core.Rect
	Ball         ball.Ball
	Score        int
	Lives        int
	LastGameOver *events.GameOverPayload
}

// Game holds the paddle variant state. Owned by the scheduler goroutine
type Game struct {
	cfg    config.PaddleConfig
	bounds core.Rect
	paddle core.Rect
	ball   ball.Ball
	score  int
	lives  int

	dragging   bool
	dragOffset float64

	rng    *vmath.FastRand
	queue  *events.EventQueue
	clock  Clock
	logger *zap.Logger
	frame  int64

	lastGameOver *events.GameOverPayload

	statHits      *atomic.Int64
	statGameOvers *atomic.Int64
	statBounces   *atomic.Int64
}

// New creates a started paddle game
func New(cfg config.PaddleConfig, seed uint64, queue *events.EventQueue, reg *status.Registry, clock Clock, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		cfg:           cfg,
		bounds:        core.NewRect(0, 0, cfg.Width, cfg.Height),
		rng:           vmath.NewFastRand(seed),
		queue:         queue,
		clock:         clock,
		logger:        logger.Named("paddle"),
		statHits:      reg.Ints.Get(status.KeyPaddleHits),
		statGameOvers: reg.Ints.Get(status.KeyGameOvers),
		statBounces:   reg.Ints.Get(status.KeyBounces),
	}
	g.reset()
	// Opening serve matches the classic start
	g.ball = ball.Ball{Pos: core.Point{X: 100, Y: 50}, Vel: core.Point{X: 3, Y: 3}, Radius: ballRadius}
	if !g.bounds.Contains(g.ball.Pos) {
		g.serve()
	}
	return g
}

func (g *Game) reset() {
	g.score = 0
	g.lives = g.cfg.Lives
	g.dragging = false
	g.paddle = core.NewRect(
		g.bounds.Width/2-g.cfg.PaddleWidth/2,
		g.bounds.Height-BottomGap,
		g.cfg.PaddleWidth,
		Thickness,
	)
	g.serve()
}

// serve puts the ball back at the top third with a random downward velocity
func (g *Game) serve() {
	g.ball = ball.Ball{
		Pos:    core.Point{X: g.bounds.Width / 2, Y: g.bounds.Height / 3},
		Vel:    core.Point{X: g.rng.Range(-3, 3), Y: g.rng.Range(3, 5)},
		Radius: ballRadius,
	}
}

// Restart performs a full reset
func (g *Game) Restart() {
	g.reset()
	g.lastGameOver = nil
	g.emit(events.EventGameReset, nil)
}

// MovePaddle steps the paddle left (dir < 0) or right (dir > 0)
func (g *Game) MovePaddle(dir int) {
	switch {
	case dir < 0:
		g.setPaddleX(g.paddle.X - Step)
	case dir > 0:
		g.setPaddleX(g.paddle.X + Step)
	}
}

// StartDrag grabs the paddle when x is on or near it
func (g *Game) StartDrag(x float64) bool {
	if x < g.paddle.X-grabSlack || x > g.paddle.Right()+grabSlack {
		return false
	}
	g.dragging = true
	g.dragOffset = x - g.paddle.X
	return true
}

// DragTo follows the pointer while dragging
func (g *Game) DragTo(x float64) {
	if g.dragging {
		g.setPaddleX(x - g.dragOffset)
	}
}

// EndDrag releases the paddle
func (g *Game) EndDrag() {
	g.dragging = false
}

func (g *Game) setPaddleX(x float64) {
	g.paddle.X = vmath.Clamp(x, 0, g.bounds.Width-g.paddle.Width)
}

// Update advances one frame
func (g *Game) Update() {
	g.frame++
	bl := &g.ball
	bl.Pos = bl.Pos.Add(bl.Vel)

	bounces := 0
	if bl.Pos.X-bl.Radius <= 0 || bl.Pos.X+bl.Radius >= g.bounds.Width {
		bl.Vel.X = g.damp(-bl.Vel.X)
		bl.Pos.X = vmath.Clamp(bl.Pos.X, bl.Radius, g.bounds.Width-bl.Radius)
		bounces++
	}
	if bl.Pos.Y-bl.Radius <= 0 {
		bl.Vel.Y = g.damp(vmath.Abs(bl.Vel.Y))
		bl.Pos.Y = bl.Radius
		bounces++
	}
	if bounces > 0 {
		g.statBounces.Add(int64(bounces))
		g.emit(events.EventBallBounce, events.BouncePayload{Count: bounces})
	}

	if g.hitsPaddle() {
		hit := (bl.Pos.X - g.paddle.X) / g.paddle.Width // 0 left edge, 1 right edge
		jitter := g.rng.Range(-0.4, 0.4)
		bl.Vel.Y = -vmath.Abs(bl.Vel.Y) * g.rng.Range(0.95, 1.10)
		bl.Vel.X = vmath.Clamp((hit-0.5)*6+jitter*4, -maxSpeed, maxSpeed)
		bl.Vel.Y = vmath.Clamp(bl.Vel.Y, -maxSpeed, maxSpeed)
		bl.Pos.Y = g.paddle.Y - bl.Radius
		g.score += HitPoints
		g.statHits.Add(1)
		g.emit(events.EventPaddleHit, events.ProgressPayload{Level: 1, Lives: g.lives, Score: g.score})
		return
	}

	if bl.Pos.Y > g.bounds.Height+fallMargin {
		g.miss()
	}
}

// hitsPaddle reports a descending ball reaching the paddle top within its
// span plus the ball radius
func (g *Game) hitsPaddle() bool {
	bl := g.ball
	return bl.Vel.Y > 0 &&
		bl.Pos.Y+bl.Radius >= g.paddle.Y &&
		bl.Pos.Y <= g.paddle.Bottom() &&
		bl.Pos.X >= g.paddle.X-bl.Radius &&
		bl.Pos.X <= g.paddle.Right()+bl.Radius
}

// damp scales v by a random factor in [0.9, 1.1]
func (g *Game) damp(v float64) float64 {
	return vmath.Clamp(v*g.rng.Range(0.9, 1.1), -maxSpeed, maxSpeed)
}

func (g *Game) miss() {
	g.lives--
	if g.lives > 0 {
		g.emit(events.EventLifeLost, events.ProgressPayload{Level: 1, Lives: g.lives, Score: g.score})
		g.serve()
		return
	}

	over := events.GameOverPayload{FinalScore: g.score, Level: 1}
	g.statGameOvers.Add(1)
	g.emit(events.EventGameOver, over)
	g.logger.Info("game over", zap.Int("score", g.score))
	g.reset()
	g.lastGameOver = &over
	g.emit(events.EventGameReset, nil)
}

func (g *Game) emit(t events.EventType, payload any) {
	ev := events.GameEvent{Type: t, Payload: payload, Frame: g.frame}
	if g.clock != nil {
		ev.Timestamp = g.clock.Now()
	}
	g.queue.Push(ev)
}

// Bounds is the field rectangle
func (g *Game) Bounds() core.Rect {
	return g.bounds
}

// Snapshot copies the drawable state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Bounds:       g.bounds,
		Paddle:       g.paddle,
		Ball:         g.ball,
		Score:        g.score,
		Lives:        g.lives,
		LastGameOver: g.lastGameOver,
	}
}

// Summary is the share-ready standing
func (g *Game) Summary() share.Summary {
	return share.Summary{Score: g.score, Level: 1, Lives: g.lives, Variant: config.VariantPaddle}
}
