package audio

import (
	"errors"
	"time"
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundBounce        SoundType = iota // Ball reflection
	SoundSplitStart                     // Line begins growing
	SoundSplitComplete                  // Line reached both edges
	SoundSplitFail                      // Ball broke the line
	SoundLevelUp                        // Fill threshold reached
	SoundGameOver                       // Last life lost
	SoundPaddleHit                      // Paddle returned the ball
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundBounce:        "bounce",
	SoundSplitStart:    "split_start",
	SoundSplitComplete: "split_complete",
	SoundSplitFail:     "split_fail",
	SoundLevelUp:       "level_up",
	SoundGameOver:      "game_over",
	SoundPaddleHit:     "paddle_hit",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Durations
const (
	bounceDuration   = 40 * time.Millisecond
	startDuration    = 60 * time.Millisecond
	completeNote     = 90 * time.Millisecond
	failDuration     = 250 * time.Millisecond
	levelUpNote      = 110 * time.Millisecond
	gameOverNote     = 220 * time.Millisecond
	paddleDuration   = 50 * time.Millisecond
	defaultAttack    = 5 * time.Millisecond
	defaultRelease   = 30 * time.Millisecond
	speakerBufferDur = 100 * time.Millisecond
)

// MaxVoices caps simultaneous effects; extra requests are dropped
const MaxVoices = 8

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
