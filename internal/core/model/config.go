package model

import "time"

// Thresholds defines the elapsed-time boundaries for break alerts.
type Thresholds struct {
	Warn  time.Duration
	Alert time.Duration
}

// Valid reports whether the thresholds are usable: both positive and
// warn strictly below alert.
func (thresholds Thresholds) Valid() bool {
	return thresholds.Warn > 0 && thresholds.Alert > 0 && thresholds.Warn < thresholds.Alert
}

// DefaultThresholds returns the built-in 20-20-20 style schedule: warn
// after 20 minutes, alert after 25.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Warn:  20 * time.Minute,
		Alert: 25 * time.Minute,
	}
}

// TimerConfig contains construction settings for the stopwatch Timer.
type TimerConfig struct {
	Thresholds   Thresholds
	StartRunning bool
}
