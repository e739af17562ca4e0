// Package stopwatch implements the elapsed-time state machine shared
// by both restwatch faces.
package stopwatch

import (
	"time"

	"restwatch/internal/core/model"
)

// State classifies the timer against its break thresholds.
type State string

const (
	StateNormal       State = "normal"
	StateBreakDue     State = "break_due"
	StateBreakOverdue State = "break_overdue"
)

// Timer counts whole elapsed seconds and classifies itself against two
// configured thresholds. It is not safe for concurrent use; the GUI
// wraps it in a Keeper for that.
type Timer struct {
	elapsed uint64
	running bool
	warn    uint64
	alert   uint64
}

// New creates a Timer with a zero counter. An invalid threshold pair
// is replaced with the defaults so a misconfigured process still runs.
func New(config model.TimerConfig) *Timer {
	thresholds := config.Thresholds
	if !thresholds.Valid() {
		thresholds = model.DefaultThresholds()
	}
	return &Timer{
		running: config.StartRunning,
		warn:    uint64(thresholds.Warn / time.Second),
		alert:   uint64(thresholds.Alert / time.Second),
	}
}

// Tick advances the counter by one second while running, and is a
// no-op otherwise.
func (timer *Timer) Tick() {
	if !timer.running {
		return
	}
	timer.elapsed++
}

// Reset returns the counter to zero. The running flag is unchanged.
func (timer *Timer) Reset() {
	timer.elapsed = 0
}

// ToggleRun flips the running flag and returns the new value.
func (timer *Timer) ToggleRun() bool {
	timer.running = !timer.running
	return timer.running
}

// Elapsed returns the counted seconds.
func (timer *Timer) Elapsed() uint64 {
	return timer.elapsed
}

// Running reports whether ticks currently advance the counter.
func (timer *Timer) Running() bool {
	return timer.running
}

// State returns the classification of the current counter value:
// StateNormal below the warn threshold, StateBreakDue from warn up to
// the alert threshold, StateBreakOverdue from alert onward.
func (timer *Timer) State() State {
	switch {
	case timer.elapsed >= timer.alert:
		return StateBreakOverdue
	case timer.elapsed >= timer.warn:
		return StateBreakDue
	default:
		return StateNormal
	}
}
