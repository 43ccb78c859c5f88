// Package audio plays synthesized effects for game events over a looping
// background track.
// A missing audio device leaves the manager silent; the game runs regardless.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/MansourDch/jezzball-clone/config"
	"github.com/MansourDch/jezzball-clone/events"
	"github.com/MansourDch/jezzball-clone/share"
	"github.com/MansourDch/jezzball-clone/status"
)

// SoundManager mixes effects into one speaker stream
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	live        bool // Mixer is attached to the speaker and needs speaker.Lock
	logger      *zap.Logger

	musicOn     bool    // Start music with the speaker
	musicVolume float64 // Linear, applied to the loop only
	music       *music  // Nil until started; its voice never leaves the mixer

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewSoundManager creates a manager from the audio config. Initialize attaches the speaker
func NewSoundManager(cfg config.AudioConfig, reg *status.Registry, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		volume:      cfg.MasterVolume,
		enabled:     cfg.Enabled,
		logger:      logger.Named("audio"),
		musicOn:     cfg.MusicEnabled,
		musicVolume: cfg.MusicVolume,
		statPlayed:  reg.Ints.Get(status.KeySoundsPlayed),
		statDropped: reg.Ints.Get(status.KeySoundsDropped),
	}
}

// Initialize opens the speaker and starts the mixer. Disabled audio is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(speakerBufferDur)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.live = true
	sm.logger.Info("audio initialized", zap.Int("sample_rate", int(sm.rate)))

	if sm.musicOn {
		if err := sm.startMusic(); err != nil {
			sm.logger.Warn("music unavailable", zap.Error(err))
		}
	}
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.withMixer(func(m *beep.Mixer) { m.Clear() })
	if sm.live {
		speaker.Close()
	}
	sm.initialized = false
	sm.live = false
	sm.music = nil
}

// SetVolume changes the master volume for sounds started afterwards
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(v, 0), 1)
}

// Volume returns the master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Play starts an effect. Returns ErrNotInitialized without a speaker;
// a full mixer drops the sound silently
func (sm *SoundManager) Play(t SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.volume <= 0 {
		return nil
	}

	s, err := Build(t, sm.rate, sm.volume)
	if err != nil {
		return err
	}

	added := false
	sm.withMixer(func(m *beep.Mixer) {
		if m.Len()-sm.musicVoices() < MaxVoices {
			m.Add(s)
			added = true
		}
	})
	if !added {
		sm.statDropped.Add(1)
		return nil
	}
	sm.statPlayed.Add(1)
	return nil
}

// StartMusic adds the background loop to the mixer, or resumes it when paused
func (sm *SoundManager) StartMusic() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	return sm.startMusic()
}

func (sm *SoundManager) startMusic() error {
	if sm.music != nil {
		sm.withMixer(func(*beep.Mixer) { sm.music.ctrl.Paused = false })
		return nil
	}
	m, err := newMusic(sm.rate, sm.musicVolume)
	if err != nil {
		return err
	}
	sm.music = m
	sm.withMixer(func(mx *beep.Mixer) { mx.Add(m.ctrl) })
	sm.logger.Debug("music started", zap.Float64("volume", sm.musicVolume))
	return nil
}

// ToggleMusic pauses or resumes the background loop, starting it on first
// use. Returns whether music is now playing
func (sm *SoundManager) ToggleMusic() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	if sm.music == nil {
		if err := sm.startMusic(); err != nil {
			sm.logger.Warn("music unavailable", zap.Error(err))
			return false
		}
		return true
	}
	playing := false
	sm.withMixer(func(*beep.Mixer) {
		sm.music.ctrl.Paused = !sm.music.ctrl.Paused
		playing = !sm.music.ctrl.Paused
	})
	return playing
}

// MusicPlaying reports whether the loop is in the mixer and not paused
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return false
	}
	playing := false
	sm.withMixer(func(*beep.Mixer) { playing = !sm.music.ctrl.Paused })
	return playing
}

// SetMusicVolume changes the loop level immediately
func (sm *SoundManager) SetMusicVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicVolume = min(max(v, 0), 1)
	if sm.music != nil {
		sm.withMixer(func(*beep.Mixer) { sm.music.setVolume(sm.musicVolume) })
	}
}

func (sm *SoundManager) musicVoices() int {
	if sm.music != nil {
		return 1
	}
	return 0
}

// withMixer runs fn against the mixer, holding the speaker lock when live
func (sm *SoundManager) withMixer(fn func(m *beep.Mixer)) {
	if sm.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn(sm.mixer)
}

// soundFor maps game events to effects
var soundFor = map[events.EventType]SoundType{
	events.EventBallBounce:     SoundBounce,
	events.EventSplitStarted:   SoundSplitStart,
	events.EventSplitCompleted: SoundSplitComplete,
	events.EventSplitFailed:    SoundSplitFail,
	events.EventLevelUp:        SoundLevelUp,
	events.EventGameOver:       SoundGameOver,
	events.EventPaddleHit:      SoundPaddleHit,
}

// HandleEvent plays the effect bound to ev
func (sm *SoundManager) HandleEvent(_ share.Summary, ev events.GameEvent) {
	t, ok := soundFor[ev.Type]
	if !ok {
		return
	}
	if err := sm.Play(t); err != nil && err != ErrNotInitialized {
		sm.logger.Debug("play failed", zap.Stringer("sound", t), zap.Error(err))
	}
}

// EventTypes lists the events with a sound
func (sm *SoundManager) EventTypes() []events.EventType {
	types := make([]events.EventType, 0, len(soundFor))
	for t := range soundFor {
		types = append(types, t)
	}
	return types
}
