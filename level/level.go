// Package level drives progression: level advance on fill threshold, life
// loss on failed splits, and full reset on game over.
package level

import (
	"errors"
	"fmt"
)

// DefaultFillThreshold is the fill percentage that clears a level
const DefaultFillThreshold = 75

var ErrUnknownPolicy = errors.New("unknown life-loss policy")

// LifeLossPolicy selects what happens to the arena after a non-fatal failed split
type LifeLossPolicy uint8

const (
	// PolicyReseed reseeds the ball set and keeps the board
	PolicyReseed LifeLossPolicy = iota
	// PolicyResetBoard resets the board and reseeds the balls
	PolicyResetBoard
	// PolicyReposition moves only the offending ball
	PolicyReposition
)

func (p LifeLossPolicy) String() string {
	switch p {
	case PolicyReseed:
		return "reseed"
	case PolicyResetBoard:
		return "reset-board"
	case PolicyReposition:
		return "reposition"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a config string to a policy
func ParsePolicy(s string) (LifeLossPolicy, error) {
	switch s {
	case "", "reseed":
		return PolicyReseed, nil
	case "reset-board":
		return PolicyResetBoard, nil
	case "reposition":
		return PolicyReposition, nil
	default:
		return PolicyReseed, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Arena is the part of the game state the controller reshapes
type Arena interface {
	ResetBoard()
	ReseedBalls(n int)
	RepositionBall(i int)
}

// Outcome is the transition a controller call produced
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLevelUp
	OutcomeLifeLost
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLevelUp:
		return "level-up"
	case OutcomeLifeLost:
		return "life-lost"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State is the progression snapshot
type State struct {
	Level  int
	Lives  int
	Filled int // Percent of board claimed, 0..100
	Score  int
}

// Config holds the rules the controller applies
type Config struct {
	StartingLives int
	FillThreshold int
	Policy        LifeLossPolicy
}

// Controller owns level, lives, fill and score
type Controller struct {
	cfg   Config
	state State
	arena Arena
}

// New creates a controller at level 1 with full lives. The arena is not touched until Start
func New(cfg Config, arena Arena) *Controller {
	if cfg.FillThreshold <= 0 {
		cfg.FillThreshold = DefaultFillThreshold
	}
	c := &Controller{cfg: cfg, arena: arena}
	c.state = State{Level: 1, Lives: cfg.StartingLives}
	return c
}

// State returns a copy of the progression state
func (c *Controller) State() State {
	return c.state
}

// Config returns the active rules
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the rules; current lives are kept
func (c *Controller) SetConfig(cfg Config) {
	if cfg.FillThreshold <= 0 {
		cfg.FillThreshold = DefaultFillThreshold
	}
	c.cfg = cfg
}

// BallCount is the number of balls a level starts with
func BallCount(level int) int {
	return 2 + level
}

// Start performs a full reset: level 1, starting lives, zero score, fresh board and balls.
// The board resets first so an arena may swap rules before lives are read
func (c *Controller) Start() {
	c.arena.ResetBoard()
	c.state = State{Level: 1, Lives: c.cfg.StartingLives}
	c.arena.ReseedBalls(BallCount(1))
}

// AddScore credits points for a completed split
func (c *Controller) AddScore(points int) {
	if points > 0 {
		c.state.Score += points
	}
}

// OnFillPercentChanged records the new fill and advances the level once it
// reaches the threshold. Lives carry over on level advance
func (c *Controller) OnFillPercentChanged(pct int) Outcome {
	if pct > c.state.Filled {
		c.state.Filled = pct
	}
	if pct < c.cfg.FillThreshold {
		return OutcomeNone
	}

	c.state.Score += 100 * c.state.Level
	c.state.Level++
	c.state.Filled = 0
	c.arena.ResetBoard()
	c.arena.ReseedBalls(BallCount(c.state.Level))
	return OutcomeLevelUp
}

// OnSplitFailed takes one life. At zero lives the game is over and a full reset follows;
// otherwise the life-loss policy decides what moves. ball is the colliding ball index
func (c *Controller) OnSplitFailed(ball int) Outcome {
	if c.state.Lives > 0 {
		c.state.Lives--
	}
	if c.state.Lives == 0 {
		c.Start()
		return OutcomeGameOver
	}

	switch c.cfg.Policy {
	case PolicyResetBoard:
		c.state.Filled = 0
		c.arena.ResetBoard()
		c.arena.ReseedBalls(BallCount(c.state.Level))
	case PolicyReposition:
		c.arena.RepositionBall(ball)
	default:
		c.arena.ReseedBalls(BallCount(c.state.Level))
	}
	return OutcomeLifeLost
}
