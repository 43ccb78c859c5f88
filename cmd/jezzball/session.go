package main

import (
	"go.uber.org/zap"

	"github.com/MansourDch/jezzball-clone/config"
	"github.com/MansourDch/jezzball-clone/core"
	"github.com/MansourDch/jezzball-clone/engine"
	"github.com/MansourDch/jezzball-clone/input"
	"github.com/MansourDch/jezzball-clone/paddle"
	"github.com/MansourDch/jezzball-clone/render"
	"github.com/MansourDch/jezzball-clone/share"
	"github.com/MansourDch/jezzball-clone/splitter"
	"github.com/MansourDch/jezzball-clone/vmath"
)

// musicPlayer toggles the background loop
type musicPlayer interface {
	ToggleMusic() bool
}

// game is one playable variant as seen by the terminal session
type game interface {
	engine.Simulation
	restart()
	applyConfig(cfg *config.Config)
	apply(in input.Intent, vp render.Viewport)
	draw(r *render.Renderer, ui render.UI)
}

// session applies intents and draws frames. All methods run on the scheduler
// goroutine, inside Actions or the draw callback
type session struct {
	game     game
	sched    *engine.ClockScheduler
	renderer *render.Renderer
	share    config.ShareConfig
	music    musicPlayer // Nil when audio is not wired
	ui       render.UI
	logger   *zap.Logger
}

func newSession(g game, sched *engine.ClockScheduler, r *render.Renderer, cfg *config.Config, logger *zap.Logger) *session {
	return &session{
		game:     g,
		sched:    sched,
		renderer: r,
		share:    cfg.Share,
		logger:   logger.Named("session"),
	}
}

// handle applies one intent. Gameplay input is ignored while paused or while
// the share overlay is open
func (s *session) handle(in input.Intent) {
	switch in.Type {
	case input.IntentNone, input.IntentQuit, input.IntentResize:
	case input.IntentPause:
		s.ui.Paused = s.sched.TogglePause()
	case input.IntentShare:
		s.toggleShare()
	case input.IntentMusic:
		if s.music != nil {
			playing := s.music.ToggleMusic()
			s.logger.Debug("music toggled", zap.Bool("playing", playing))
		}
	case input.IntentRestart:
		s.ui.ShowShare = false
		s.game.restart()
	default:
		if s.ui.Paused || s.ui.ShowShare {
			return
		}
		s.game.apply(in, s.renderer.Viewport())
	}
}

func (s *session) toggleShare() {
	if s.ui.ShowShare {
		s.ui.ShowShare = false
		return
	}
	text := s.game.Summary().Text(s.share.Message, s.share.PlayURL)
	u, err := share.ComposeURL(s.share.ComposeBase, text)
	if err != nil {
		s.logger.Warn("share url", zap.Error(err))
		u = ""
	}
	s.ui.ShowShare = true
	s.ui.ShareText = text
	s.ui.ShareURL = u
}

// applyConfig adopts a reloaded config
func (s *session) applyConfig(cfg *config.Config) {
	s.share = cfg.Share
	s.game.applyConfig(cfg)
}

func (s *session) draw(paused bool) {
	s.ui.Paused = paused
	s.game.draw(s.renderer, s.ui)
}

// ===== Wall variant =====

type wallGame struct {
	*engine.GameState
	cursor core.Point
	dir    core.Direction
}

func newWallGame(gs *engine.GameState) *wallGame {
	return &wallGame{GameState: gs, cursor: gs.Board().Bounds().Center()}
}

func (w *wallGame) restart() {
	w.StartGame()
}

func (w *wallGame) applyConfig(cfg *config.Config) {
	w.ApplyConfig(cfg)
}

func (w *wallGame) apply(in input.Intent, vp render.Viewport) {
	bounds := w.Board().Bounds()
	switch in.Type {
	case input.IntentMove:
		if vp.Cols == 0 || vp.Rows == 0 {
			return
		}
		cw, ch := vp.CellSize()
		w.cursor.X = vmath.Clamp(w.cursor.X+float64(in.DX)*cw, bounds.X+cw/2, bounds.Right()-cw/2)
		w.cursor.Y = vmath.Clamp(w.cursor.Y+float64(in.DY)*ch, bounds.Y+ch/2, bounds.Bottom()-ch/2)
	case input.IntentRotate:
		w.dir = w.dir.Perpendicular()
	case input.IntentSplit:
		w.BeginSplit(w.cursor, w.dir)
	case input.IntentSplitAt:
		p, ok := vp.ToWorld(in.X, in.Y)
		if !ok {
			return
		}
		w.cursor = p
		if in.Auto {
			w.BeginSplitAuto(p)
			return
		}
		w.BeginSplit(p, splitter.AutoDirection(p, bounds).Perpendicular())
	}
}

func (w *wallGame) draw(r *render.Renderer, ui render.UI) {
	ui.Cursor = w.cursor
	ui.Dir = w.dir
	r.DrawWall(w.Snapshot(), ui)
}

// ===== Paddle variant =====

type paddleGame struct {
	*paddle.Game
}

func (p paddleGame) restart() {
	p.Restart()
}

// applyConfig is a no-op: the paddle field is sized at launch
func (p paddleGame) applyConfig(*config.Config) {}

func (p paddleGame) apply(in input.Intent, vp render.Viewport) {
	switch in.Type {
	case input.IntentPaddleMove:
		p.MovePaddle(in.DX)
	case input.IntentDragStart:
		if pt, ok := vp.ToWorld(in.X, in.Y); ok {
			p.StartDrag(pt.X)
		}
	case input.IntentDrag:
		if pt, ok := vp.ToWorld(in.X, in.Y); ok {
			p.DragTo(pt.X)
		}
	case input.IntentDragEnd:
		p.EndDrag()
	}
}

func (p paddleGame) draw(r *render.Renderer, ui render.UI) {
	r.DrawPaddle(p.Snapshot(), ui)
}
