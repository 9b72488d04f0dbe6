package models

import (
	"github.com/pkg/errors"
)

const (
	MinSessionMinutes = 1
	MaxSessionMinutes = 60
)

// Clock modes for driving the timer.
const (
	ClockFixed     = "fixed"
	ClockMonotonic = "monotonic"
)

type Config struct {
	SessionMinutes   int    `toml:"session_minutes"`   // Default session length in minutes
	Countdown        bool   `toml:"countdown"`         // Show a 3-2-1 countdown before the first phase
	CountdownSeconds int    `toml:"countdown_seconds"` // Length of the countdown
	Clock            string `toml:"clock"`             // "fixed" or "monotonic"
	LogLevel         string `toml:"log_level"`         // zerolog level name
}

func DefaultConfig() Config {
	return Config{
		SessionMinutes:   15,
		Countdown:        true,
		CountdownSeconds: 3,
		Clock:            ClockFixed,
		LogLevel:         "info",
	}
}

// Validate checks every field is usable by the timer.
func (c Config) Validate() error {
	if c.SessionMinutes < MinSessionMinutes || c.SessionMinutes > MaxSessionMinutes {
		return errors.Errorf("session_minutes must be between %d-%d, got %d",
			MinSessionMinutes, MaxSessionMinutes, c.SessionMinutes)
	}
	if c.CountdownSeconds < 1 || c.CountdownSeconds > 10 {
		return errors.Errorf("countdown_seconds must be between 1-10, got %d", c.CountdownSeconds)
	}
	switch c.Clock {
	case ClockFixed, ClockMonotonic:
	default:
		return errors.Errorf("clock must be %q or %q, got %q", ClockFixed, ClockMonotonic, c.Clock)
	}
	return nil
}
