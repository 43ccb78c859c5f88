package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MansourDch/jezzball-clone/audio"
	"github.com/MansourDch/jezzball-clone/config"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/engine"
	"github.com/MansourDch/jezzball-clone/events"
	"github.com/MansourDch/jezzball-clone/input"
	"github.com/MansourDch/jezzball-clone/paddle"
	"github.com/MansourDch/jezzball-clone/render"
	"github.com/MansourDch/jezzball-clone/status"
)

// errQuit ends the errgroup when the player quits
var errQuit = errors.New("quit")

// app is everything one game needs apart from the terminal
type app struct {
	cfg   *config.Config
	reg   *status.Registry
	queue *events.EventQueue
	clock *engine.PausableClock
	sched *engine.ClockScheduler
	game  game
}

// newApp wires the variant selected by cfg to a scheduler
func newApp(cfg *config.Config, source engine.TimeProvider, logger *zap.Logger) *app {
	rt := &app{
		cfg:   cfg,
		reg:   status.NewRegistry(),
		queue: events.NewEventQueue(),
		clock: engine.NewPausableClock(source),
	}

	switch cfg.Variant {
	case config.VariantPaddle:
		seed := uint64(cfg.Engine.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rt.game = paddleGame{paddle.New(cfg.Paddle, seed, rt.queue, rt.reg, rt.clock, logger)}
	default:
		rt.game = newWallGame(engine.NewGameState(cfg, rt.queue, rt.reg, rt.clock, logger))
	}

	rt.sched = engine.NewClockScheduler(rt.game, rt.clock, cfg.TickInterval(), rt.queue, rt.reg, logger)
	return rt
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt := newApp(cfg, engine.NewMonotonicTimeProvider(), logger)

	sounds := audio.NewSoundManager(cfg.Audio, rt.reg, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer sounds.Cleanup()
	rt.sched.RegisterEventHandler(sounds)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()
	defer core.Recover()

	sess := newSession(rt.game, rt.sched, render.New(screen), cfg, logger)
	sess.music = sounds
	mode := input.ModeWall
	if cfg.Variant == config.VariantPaddle {
		mode = input.ModePaddle
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer core.Recover()
		return rt.sched.Run(ctx, sess.draw)
	})

	g.Go(func() error {
		defer core.Recover()
		return pumpInput(ctx, screen, input.NewTranslator(mode), rt.sched, sess)
	})

	if w, err := config.NewWatcher(configPath, logger); err != nil {
		logger.Warn("config hot reload disabled", zap.Error(err))
	} else {
		w.SetOverride(applyFlags)
		g.Go(func() error {
			defer core.Recover()
			return w.Run(ctx)
		})
		g.Go(func() error {
			defer core.Recover()
			for {
				select {
				case <-ctx.Done():
					return nil
				case next := <-w.Updates():
					rt.reg.Inc(status.KeyConfigReloads)
					rt.sched.Submit(func() {
						sess.applyConfig(next)
						sounds.SetVolume(next.Audio.MasterVolume)
						sounds.SetMusicVolume(next.Audio.MusicVolume)
					})
				}
			}
		})
	}

	logger.Info("game started", zap.String("variant", cfg.Variant))
	err = g.Wait()
	if errors.Is(err, errQuit) {
		err = nil
	}
	logger.Info("game ended", zap.Any("summary", rt.game.Summary()))
	return err
}

// pumpInput polls the terminal and forwards translated intents to the
// scheduler. Fini on the screen unblocks PollEvent when ctx ends
func pumpInput(ctx context.Context, screen tcell.Screen, tr *input.Translator, sched *engine.ClockScheduler, sess *session) error {
	core.Go(func() {
		<-ctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		in := tr.Translate(ev)
		switch in.Type {
		case input.IntentNone:
			continue
		case input.IntentQuit:
			return errQuit
		case input.IntentResize:
			screen.Sync()
		}
		sched.Submit(func() { sess.handle(in) })
	}
}
