// Package config defines the game configuration and how it is loaded.
package config

import (
	"fmt"
	"time"

	"github.com/cbodonnell/reaction/pkg/log"
	"github.com/cbodonnell/reaction/pkg/pointer"
	"github.com/cbodonnell/reaction/pkg/reaction"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: error, warn, info, debug, trace.
	LogLevel string `koanf:"log_level"`

	// MinDelayMS and MaxDelayMS bound the random cue delay as [min, max).
	// Both must lie within [2000, 5000].
	MinDelayMS int `koanf:"min_delay_ms"`
	MaxDelayMS int `koanf:"max_delay_ms"`

	// HistorySize caps the number of scores kept for the session, at most 50.
	HistorySize int `koanf:"history_size"`

	// WindowWidth and WindowHeight set the logical screen size.
	WindowWidth  int  `koanf:"window_width"`
	WindowHeight int  `koanf:"window_height"`
	Fullscreen   bool `koanf:"fullscreen"`

	// Title is the window title.
	Title string `koanf:"title"`

	// MetricsAddr serves Prometheus metrics when set, e.g. "localhost:9091".
	MetricsAddr string `koanf:"metrics_addr"`

	// TouchCompatWindowMS drops mouse presses this soon after a touch press.
	TouchCompatWindowMS int `koanf:"touch_compat_window_ms"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		MinDelayMS:          int(reaction.DefaultMinDelay / time.Millisecond),
		MaxDelayMS:          int(reaction.DefaultMaxDelay / time.Millisecond),
		HistorySize:         reaction.DefaultHistorySize,
		WindowWidth:         640,
		WindowHeight:        480,
		Fullscreen:          false,
		Title:               "Reaction Test",
		MetricsAddr:         "",
		TouchCompatWindowMS: int(pointer.DefaultCompatWindow / time.Millisecond),
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	minDelay, maxDelay := int(reaction.DefaultMinDelay/time.Millisecond), int(reaction.DefaultMaxDelay/time.Millisecond)
	if c.MinDelayMS < minDelay {
		return fmt.Errorf("%w: min_delay_ms (%d) must be at least %d", ErrInvalidConfig, c.MinDelayMS, minDelay)
	}
	if c.MaxDelayMS > maxDelay {
		return fmt.Errorf("%w: max_delay_ms (%d) must be at most %d", ErrInvalidConfig, c.MaxDelayMS, maxDelay)
	}
	if c.MaxDelayMS <= c.MinDelayMS {
		return fmt.Errorf("%w: max_delay_ms (%d) must be greater than min_delay_ms (%d)", ErrInvalidConfig, c.MaxDelayMS, c.MinDelayMS)
	}
	if c.HistorySize <= 0 || c.HistorySize > reaction.MaxHistorySize {
		return fmt.Errorf("%w: history_size (%d) must be between 1 and %d", ErrInvalidConfig, c.HistorySize, reaction.MaxHistorySize)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	}
	if c.TouchCompatWindowMS < 0 {
		return fmt.Errorf("%w: touch_compat_window_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) MinDelay() time.Duration {
	return time.Duration(c.MinDelayMS) * time.Millisecond
}

func (c *Config) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelayMS) * time.Millisecond
}

func (c *Config) TouchCompatWindow() time.Duration {
	return time.Duration(c.TouchCompatWindowMS) * time.Millisecond
}
