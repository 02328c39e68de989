package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDuration indicates a phase duration shorter than one second.
var ErrInvalidDuration = errors.New("duration must be at least one second")

// PomodoroConfig contains the phase durations for the countdown engine.
type PomodoroConfig struct {
	Work  time.Duration
	Relax time.Duration
}

// DefaultPomodoroConfig returns the stock 10s work / 5s relax cycle.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		Work:  10 * time.Second,
		Relax: 5 * time.Second,
	}
}

// Validate rejects durations that do not cover a whole second.
func (config PomodoroConfig) Validate() error {
	if config.Work < time.Second {
		return fmt.Errorf("work %s: %w", config.Work, ErrInvalidDuration)
	}
	if config.Relax < time.Second {
		return fmt.Errorf("relax %s: %w", config.Relax, ErrInvalidDuration)
	}
	return nil
}

// WorkSeconds returns the work duration truncated to whole seconds.
func (config PomodoroConfig) WorkSeconds() int {
	return int(config.Work / time.Second)
}

// RelaxSeconds returns the relax duration truncated to whole seconds.
func (config PomodoroConfig) RelaxSeconds() int {
	return int(config.Relax / time.Second)
}
