package stopwatch

import (
	"sync"
	"time"
)

// Config contains runtime options for Keeper.
type Config struct {
	TickInterval time.Duration
}

// Keeper drives a Timer from a ticker goroutine and fans out events to
// subscribers. All Timer access goes through the Keeper's mutex, so the
// ticker and UI callbacks never race.
type Keeper struct {
	mu        sync.Mutex
	timer     *Timer
	recorder  *Recorder
	options   Config
	events    []chan Event
	stopCh    chan struct{}
	running   bool
	lastState State
	lastRun   bool
}

// NewKeeper wraps the given Timer. The recorder may be nil when session
// history is disabled.
func NewKeeper(timer *Timer, recorder *Recorder, options Config) *Keeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Keeper{
		timer:    timer,
		recorder: recorder,
		options:  options,
	}
}

// Subscribe registers a new observer channel.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start launches the ticking loop and emits the initial state. A
// stopped keeper may be started again, though subscribers closed by
// Stop are gone for good.
func (keeper *Keeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	stopCh := keeper.stopCh
	event := keeper.snapshotLocked(EventStateChange, time.Now())
	keeper.lastState = event.State
	keeper.lastRun = event.Running
	keeper.emitLocked(event)
	keeper.mu.Unlock()

	go keeper.run(stopCh)
}

// Stop terminates the ticking loop and closes observer channels.
func (keeper *Keeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// ToggleRun flips the timer's running flag, records the ended span, and
// returns the new running state.
func (keeper *Keeper) ToggleRun() bool {
	now := time.Now()
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	wasRunning := keeper.timer.Running()
	running := keeper.timer.ToggleRun()
	if keeper.recorder != nil {
		keeper.recorder.Toggle(wasRunning, now)
	}
	event := keeper.snapshotLocked(EventStateChange, now)
	keeper.lastState = event.State
	keeper.lastRun = event.Running
	keeper.emitLocked(event)
	return running
}

// Reset returns the timer to zero and announces the change.
func (keeper *Keeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.timer.Reset()
	event := keeper.snapshotLocked(EventStateChange, time.Now())
	keeper.lastState = event.State
	keeper.lastRun = event.Running
	keeper.emitLocked(event)
}

// Snapshot returns the current timer state without mutating it.
func (keeper *Keeper) Snapshot() Event {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked(EventTick, time.Now())
}

func (keeper *Keeper) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			keeper.tick(tickTime)
		}
	}
}

func (keeper *Keeper) tick(tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.timer.Tick()
	event := keeper.snapshotLocked(EventTick, tickTime)
	changed := event.State != keeper.lastState || event.Running != keeper.lastRun
	keeper.lastState = event.State
	keeper.lastRun = event.Running

	keeper.emitLocked(event)
	if changed {
		event.Type = EventStateChange
		keeper.emitLocked(event)
	}
}

func (keeper *Keeper) snapshotLocked(eventType EventType, at time.Time) Event {
	event := Event{
		Type:    eventType,
		State:   keeper.timer.State(),
		Elapsed: keeper.timer.Elapsed(),
		Running: keeper.timer.Running(),
		At:      at,
	}
	if keeper.recorder != nil {
		event.Breaks = keeper.recorder.Breaks()
	}
	return event
}

// emitLocked sends to subscribers while holding the mutex, so a
// concurrent Stop cannot close a channel mid-send. The non-blocking
// send keeps slow subscribers from stalling the tick loop.
func (keeper *Keeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
