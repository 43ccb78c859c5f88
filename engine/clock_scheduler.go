package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/MansourDch/jezzball-clone/events"
	"github.com/MansourDch/jezzball-clone/share"
	"github.com/MansourDch/jezzball-clone/status"
)

var ErrAlreadyRunning = errors.New("scheduler already running")

// ActionBuffer is the number of queued input actions before Submit drops
const ActionBuffer = 64

// Simulation is a game variant the scheduler can drive
type Simulation interface {
	Update()
	Summary() share.Summary
}

// Action runs on the scheduler goroutine with exclusive access to the simulation
type Action func()

// DrawFunc renders the current state. Called on the scheduler goroutine
type DrawFunc func(paused bool)

// ClockScheduler runs the simulation on a fixed tick against game time
// It is the single owner of the simulation: input reaches it only as Actions
// Events pushed during a tick are routed before the frame is drawn
type ClockScheduler struct {
	sim    Simulation
	clock  *PausableClock
	queue  *events.EventQueue
	router *events.Router[share.Summary]
	logger *zap.Logger

	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline in game time, for drift correction

	actions chan Action
	running atomic.Bool

	// Cached metric pointers
	statTicks  *atomic.Int64
	statRouted *atomic.Int64
	statPaused *atomic.Bool
}

// NewClockScheduler creates a scheduler ticking every tickInterval of game time
func NewClockScheduler(
	sim Simulation,
	clock *PausableClock,
	tickInterval time.Duration,
	queue *events.EventQueue,
	reg *status.Registry,
	logger *zap.Logger,
) *ClockScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg.Floats.Get(status.KeyTickRate).Set(float64(time.Second) / float64(tickInterval))
	return &ClockScheduler{
		sim:          sim,
		clock:        clock,
		queue:        queue,
		router:       events.NewRouter[share.Summary](queue),
		logger:       logger.Named("scheduler"),
		tickInterval: tickInterval,
		actions:      make(chan Action, ActionBuffer),
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statRouted:   reg.Ints.Get(status.KeyEventsRouted),
		statPaused:   reg.Bools.Get(status.KeyPaused),
	}
}

// RegisterEventHandler adds an event handler to the router, must be called before Run
func (cs *ClockScheduler) RegisterEventHandler(h events.Handler[share.Summary]) {
	cs.router.Register(h)
}

// Submit queues an action for the scheduler goroutine. Returns false when the
// buffer is full and the action was dropped
func (cs *ClockScheduler) Submit(a Action) bool {
	select {
	case cs.actions <- a:
		return true
	default:
		cs.logger.Warn("action dropped, buffer full")
		return false
	}
}

// Step processes one tick: update unless paused, then route events
func (cs *ClockScheduler) Step() {
	if !cs.clock.IsPaused() {
		cs.sim.Update()
		cs.statTicks.Add(1)
	}
	cs.dispatch()
}

// TogglePause flips pause and returns the new state. Call from an Action while running
func (cs *ClockScheduler) TogglePause() bool {
	paused := cs.clock.Toggle()
	cs.statPaused.Store(paused)
	cs.queue.Push(events.GameEvent{
		Type:      events.EventPauseToggled,
		Payload:   events.PausePayload{Paused: paused},
		Timestamp: cs.clock.Now(),
	})
	cs.logger.Debug("pause toggled", zap.Bool("paused", paused))
	return paused
}

// IsPaused reports the clock pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.clock.IsPaused()
}

func (cs *ClockScheduler) dispatch() {
	if n := cs.router.DispatchAll(cs.sim.Summary()); n > 0 {
		cs.statRouted.Add(int64(n))
	}
}

// Run ticks until ctx is cancelled. draw may be nil
func (cs *ClockScheduler) Run(ctx context.Context, draw DrawFunc) error {
	if !cs.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer cs.running.Store(false)

	if draw == nil {
		draw = func(bool) {}
	}

	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	cs.logger.Info("scheduler started", zap.Duration("tick", cs.tickInterval))
	for {
		select {
		case <-ctx.Done():
			cs.logger.Info("scheduler stopped", zap.Int64("ticks", cs.statTicks.Load()))
			return nil

		case a := <-cs.actions:
			a()
			cs.dispatch()
			draw(cs.clock.IsPaused())

		case <-timer.C:
			if cs.clock.IsPaused() {
				// Game time is frozen; keep drawing at a lower rate
				draw(true)
				timer.Reset(cs.tickInterval * 2)
				continue
			}

			gameNow := cs.clock.Now()
			if !gameNow.Before(cs.nextTickDeadline) {
				cs.Step()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

				maxBehind := cs.tickInterval * 2
				if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				draw(false)
			}

			timer.Reset(max(cs.nextTickDeadline.Sub(cs.clock.Now()), 0))
		}
	}
}
