// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings from TRACKPLAY_* environment
// variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Output
	SampleRate int
	Channels   int
	BlockSize  int // frames per block

	// Engine
	QueueSize  int
	FadeIn     time.Duration
	FadeOut    time.Duration
	FadeOnStop bool

	// Loading
	MaxTrackFrames int // 0 for no limit
	HTTPTimeout    time.Duration

	LogLevel zerolog.Level
}

// Load reads configuration from environment variables with sane defaults.
// Malformed values fall back to the default.
func Load() Config {
	return Config{
		SampleRate: envInt("TRACKPLAY_SAMPLE_RATE", 44100),
		Channels:   envInt("TRACKPLAY_CHANNELS", 2),
		BlockSize:  envInt("TRACKPLAY_BLOCK_SIZE", 512),

		QueueSize:  envInt("TRACKPLAY_QUEUE_SIZE", 64),
		FadeIn:     envDuration("TRACKPLAY_FADE_IN", 0),
		FadeOut:    envDuration("TRACKPLAY_FADE_OUT", 0),
		FadeOnStop: envBool("TRACKPLAY_FADE_ON_STOP", false),

		MaxTrackFrames: envInt("TRACKPLAY_MAX_TRACK_FRAMES", 0),
		HTTPTimeout:    envDuration("TRACKPLAY_HTTP_TIMEOUT", 30*time.Second),

		LogLevel: envLevel("TRACKPLAY_LOG_LEVEL", zerolog.InfoLevel),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go durations ("250ms") and bare seconds ("0.25").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(s * float64(time.Second))
	}
	return fallback
}

func envLevel(key string, fallback zerolog.Level) zerolog.Level {
	if v := os.Getenv(key); v != "" {
		if l, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			return l
		}
	}
	return fallback
}
