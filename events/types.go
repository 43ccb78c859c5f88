package events

import (
	"time"

	"github.com/MansourDch/jezzball-clone/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSplitStarted signals a split line began growing
	// Trigger: BeginSplit accepted | Payload: SplitPayload
	EventSplitStarted EventType = iota

	// EventSplitCompleted signals a split line reached both board edges
	// Trigger: Splitter completion | Payload: SplitCompletedPayload
	EventSplitCompleted

	// EventSplitFailed signals a ball touched the growing line
	// Trigger: Splitter collision | Payload: SplitPayload
	EventSplitFailed

	// EventLifeLost signals a non-fatal life loss
	// Trigger: Level controller after a failed split, paddle miss | Payload: ProgressPayload
	EventLifeLost

	// EventLevelUp signals the fill threshold was reached
	// Trigger: Level controller | Payload: ProgressPayload
	EventLevelUp

	// EventGameOver signals lives ran out. Fires once per exhaustion, before the full reset
	// Consumer: UI overlay, audio, share | Payload: GameOverPayload
	EventGameOver

	// EventGameReset signals a fresh game started (manual restart or after game over)
	// Payload: nil
	EventGameReset

	// EventBallBounce signals one or more reflections this tick
	// Payload: BouncePayload
	EventBallBounce

	// EventPaddleHit signals the paddle returned the ball
	// Trigger: Paddle variant | Payload: ProgressPayload
	EventPaddleHit

	// EventPauseToggled signals pause state change
	// Trigger: Scheduler | Payload: PausePayload
	EventPauseToggled
)

var eventNames = map[EventType]string{
	EventSplitStarted:   "split_started",
	EventSplitCompleted: "split_completed",
	EventSplitFailed:    "split_failed",
	EventLifeLost:       "life_lost",
	EventLevelUp:        "level_up",
	EventGameOver:       "game_over",
	EventGameReset:      "game_reset",
	EventBallBounce:     "ball_bounce",
	EventPaddleHit:      "paddle_hit",
	EventPauseToggled:   "pause_toggled",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}

// SplitPayload describes the split that started or failed
type SplitPayload struct {
	Anchor core.Point
	Dir    core.Direction
	Ball   int // Colliding ball on failure, -1 otherwise
}

// SplitCompletedPayload describes a completed split
type SplitCompletedPayload struct {
	Line    core.Segment
	Claimed int // Pieces marked filled
	Filled  int // Board fill percentage after the split
}

// ProgressPayload carries level and lives after a transition
type ProgressPayload struct {
	Level int
	Lives int
	Score int
}

// GameOverPayload carries the final standing before the reset
type GameOverPayload struct {
	FinalScore int
	Level      int
	Filled     int
}

// BouncePayload counts reflections in one tick
type BouncePayload struct {
	Count int
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
