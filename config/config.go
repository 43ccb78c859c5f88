// Package config loads game tuning from YAML with JEZZBALL_* environment
// overrides and watches the file for live edits.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MansourDch/jezzball-clone/ball"
	"github.com/MansourDch/jezzball-clone/level"
)

var ErrInvalidConfig = errors.New("invalid config")

// Variants
const (
	VariantWall   = "wall"
	VariantPaddle = "paddle"
)

// Config holds all jezzball configuration
type Config struct {
	Variant string       `yaml:"variant"` // wall, paddle
	Board   BoardConfig  `yaml:"board"`
	Split   SplitConfig  `yaml:"split"`
	Balls   BallConfig   `yaml:"balls"`
	Rules   RulesConfig  `yaml:"rules"`
	Engine  EngineConfig `yaml:"engine"`
	Paddle  PaddleConfig `yaml:"paddle"`
	Audio   AudioConfig  `yaml:"audio"`
	Share   ShareConfig  `yaml:"share"`
}

// BoardConfig sizes the play area in world units
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SplitConfig tunes line growth
type SplitConfig struct {
	Speed     float64 `yaml:"speed"`     // Units per tick on each side
	Thickness float64 `yaml:"thickness"` // Collision width
}

// BallConfig tunes spawning
type BallConfig struct {
	Radius   float64 `yaml:"radius"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	Margin   float64 `yaml:"margin"`
}

// RulesConfig holds progression rules
type RulesConfig struct {
	StartingLives int    `yaml:"starting_lives"`
	FillThreshold int    `yaml:"fill_threshold"` // Percent
	LifeLoss      string `yaml:"life_loss"`      // reseed, reset-board, reposition
}

// EngineConfig tunes the scheduler
type EngineConfig struct {
	TickRate int   `yaml:"tick_rate"` // Hz
	Seed     int64 `yaml:"seed"`      // 0 picks a time-based seed
}

// PaddleConfig sizes the paddle variant field
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PaddleWidth float64 `yaml:"paddle_width"`
	Lives       int     `yaml:"lives"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
	SampleRate   int     `yaml:"sample_rate"`
	MusicEnabled bool    `yaml:"music_enabled"` // Background loop starts with the speaker
	MusicVolume  float64 `yaml:"music_volume"`  // 0.0 to 1.0, independent of master
}

// ShareConfig fills the share overlay
type ShareConfig struct {
	Message     string `yaml:"message"`
	PlayURL     string `yaml:"play_url"`
	ComposeBase string `yaml:"compose_base"`
}

// DefaultConfig returns the built-in tuning
func DefaultConfig() *Config {
	return &Config{
		Variant: VariantWall,
		Board:   BoardConfig{Width: 400, Height: 400},
		Split:   SplitConfig{Speed: 3, Thickness: 2},
		Balls:   BallConfig{Radius: 5, SpeedMin: 1.5, SpeedMax: 3, Margin: 5},
		Rules: RulesConfig{
			StartingLives: 3,
			FillThreshold: level.DefaultFillThreshold,
			LifeLoss:      level.PolicyReseed.String(),
		},
		Engine: EngineConfig{TickRate: 60},
		Paddle: PaddleConfig{Width: 160, Height: 160, PaddleWidth: 30, Lives: 3},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
			MusicEnabled: true,
			MusicVolume:  0.25,
		},
		Share: ShareConfig{
			ComposeBase: "https://warpcast.com/~/compose",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	return load(path, true)
}

// load is Load with control over a missing file, which the watcher must not
// mistake for a request to reset to defaults
func load(path string, allowMissing bool) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && allowMissing:
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects tuning the game cannot run with
func (c *Config) Validate() error {
	if c.Variant != VariantWall && c.Variant != VariantPaddle {
		return fmt.Errorf("%w: variant %q (valid: wall, paddle)", ErrInvalidConfig, c.Variant)
	}
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board size %gx%g", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Split.Speed <= 0 || c.Split.Thickness < 0 {
		return fmt.Errorf("%w: split speed %g thickness %g", ErrInvalidConfig, c.Split.Speed, c.Split.Thickness)
	}
	if c.Balls.Radius <= 0 || c.Balls.SpeedMin <= 0 || c.Balls.SpeedMax < c.Balls.SpeedMin {
		return fmt.Errorf("%w: ball radius %g speed [%g, %g]", ErrInvalidConfig, c.Balls.Radius, c.Balls.SpeedMin, c.Balls.SpeedMax)
	}
	if 2*(c.Balls.Radius+c.Balls.Margin) >= min(c.Board.Width, c.Board.Height) {
		return fmt.Errorf("%w: balls do not fit the board", ErrInvalidConfig)
	}
	if c.Rules.StartingLives < 1 {
		return fmt.Errorf("%w: starting_lives %d", ErrInvalidConfig, c.Rules.StartingLives)
	}
	if c.Rules.FillThreshold < 1 || c.Rules.FillThreshold > 100 {
		return fmt.Errorf("%w: fill_threshold %d not in 1..100", ErrInvalidConfig, c.Rules.FillThreshold)
	}
	if _, err := level.ParsePolicy(c.Rules.LifeLoss); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Engine.TickRate < 1 || c.Engine.TickRate > 1000 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidConfig, c.Engine.TickRate)
	}
	if c.Paddle.Width <= c.Paddle.PaddleWidth || c.Paddle.Height <= 0 || c.Paddle.Lives < 1 {
		return fmt.Errorf("%w: paddle field %gx%g paddle %g lives %d", ErrInvalidConfig,
			c.Paddle.Width, c.Paddle.Height, c.Paddle.PaddleWidth, c.Paddle.Lives)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume %g not in 0..1", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("%w: music_volume %g not in 0..1", ErrInvalidConfig, c.Audio.MusicVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	return nil
}

// LevelConfig converts the rules for the level controller. Call after Validate
func (c *Config) LevelConfig() level.Config {
	policy, _ := level.ParsePolicy(c.Rules.LifeLoss)
	return level.Config{
		StartingLives: c.Rules.StartingLives,
		FillThreshold: c.Rules.FillThreshold,
		Policy:        policy,
	}
}

// Spawn converts the ball tuning for the ball set
func (c *Config) Spawn() ball.Spawn {
	return ball.Spawn{
		Radius:   c.Balls.Radius,
		SpeedMin: c.Balls.SpeedMin,
		SpeedMax: c.Balls.SpeedMax,
		Margin:   c.Balls.Margin,
	}
}

// TickInterval is the scheduler period
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Engine.TickRate)
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
