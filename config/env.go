package config

import (
	"os"
	"strconv"
)

// Environment variables recognized on top of the file
const (
	EnvVariant       = "JEZZBALL_VARIANT"
	EnvSeed          = "JEZZBALL_SEED"
	EnvTickRate      = "JEZZBALL_TICK_RATE"
	EnvSplitSpeed    = "JEZZBALL_SPLIT_SPEED"
	EnvLives         = "JEZZBALL_LIVES"
	EnvFillThreshold = "JEZZBALL_FILL_THRESHOLD"
	EnvLifeLoss      = "JEZZBALL_LIFE_LOSS"
	EnvAudioEnabled  = "JEZZBALL_AUDIO_ENABLED"
	EnvMasterVolume  = "JEZZBALL_MASTER_VOLUME" // 0-100
	EnvSampleRate    = "JEZZBALL_SAMPLE_RATE"
	EnvMusicEnabled  = "JEZZBALL_MUSIC_ENABLED"
	EnvPlayURL       = "JEZZBALL_PLAY_URL"
)

// applyEnvOverrides applies environment variable overrides. Unparseable values are ignored
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvVariant); v != "" {
		c.Variant = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Engine.Seed = n
		}
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.TickRate = n
		}
	}
	if v := os.Getenv(EnvSplitSpeed); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Split.Speed = f
		}
	}
	if v := os.Getenv(EnvLives); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Rules.StartingLives = n
			c.Paddle.Lives = n
		}
	}
	if v := os.Getenv(EnvFillThreshold); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Rules.FillThreshold = n
		}
	}
	if v := os.Getenv(EnvLifeLoss); v != "" {
		c.Rules.LifeLoss = v
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	// Master volume is given as 0-100 and stored as 0.0-1.0
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}
	if v := os.Getenv(EnvSampleRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Audio.SampleRate = n
		}
	}
	if v := os.Getenv(EnvMusicEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.MusicEnabled = b
		}
	}
	if v := os.Getenv(EnvPlayURL); v != "" {
		c.Share.PlayURL = v
	}
}
