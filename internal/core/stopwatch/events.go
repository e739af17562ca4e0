package stopwatch

import "time"

// EventType defines the type of Keeper event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventStateChange EventType = "state_change"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type    EventType
	State   State
	Elapsed uint64
	Running bool
	Breaks  int
	At      time.Time
}
