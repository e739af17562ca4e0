package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restwatch/internal/core/model"
)

func newTestKeeper(t *testing.T, thresholds model.Thresholds) *Keeper {
	t.Helper()
	timer := New(model.TimerConfig{Thresholds: thresholds, StartRunning: true})
	keeper := NewKeeper(timer, NewRecorder(time.Now()), Config{TickInterval: time.Millisecond})
	t.Cleanup(keeper.Stop)
	return keeper
}

// waitForState drains events until a state-change event with the wanted
// state arrives or the deadline expires.
func waitForState(t *testing.T, events <-chan Event, want State) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed while waiting for state %q", want)
			}
			if event.Type == EventStateChange && event.State == want {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state %q", want)
		}
	}
}

func TestKeeperEmitsStateChangesAtThresholds(t *testing.T) {
	keeper := newTestKeeper(t, model.Thresholds{Warn: 2 * time.Second, Alert: 4 * time.Second})
	events := keeper.Subscribe(64)

	keeper.Start()

	waitForState(t, events, StateBreakDue)
	event := waitForState(t, events, StateBreakOverdue)
	assert.GreaterOrEqual(t, event.Elapsed, uint64(4))
}

func TestKeeperToggleRunRecordsSessions(t *testing.T) {
	keeper := newTestKeeper(t, model.DefaultThresholds())
	events := keeper.Subscribe(4)

	require.False(t, keeper.ToggleRun())
	event := <-events
	require.Equal(t, EventStateChange, event.Type)
	assert.False(t, event.Running)
	assert.Equal(t, 0, event.Breaks, "first ended span was active, not a break")

	require.True(t, keeper.ToggleRun())
	event = <-events
	assert.True(t, event.Running)
	assert.Equal(t, 1, event.Breaks)
}

func TestKeeperResetReturnsToNormal(t *testing.T) {
	timer := New(model.TimerConfig{
		Thresholds:   model.Thresholds{Warn: time.Second, Alert: 2 * time.Second},
		StartRunning: true,
	})
	timer.Tick()
	timer.Tick()
	keeper := NewKeeper(timer, nil, Config{TickInterval: time.Millisecond})
	events := keeper.Subscribe(4)

	require.Equal(t, StateBreakOverdue, keeper.Snapshot().State)

	keeper.Reset()

	event := <-events
	assert.Equal(t, EventStateChange, event.Type)
	assert.Equal(t, StateNormal, event.State)
	assert.Equal(t, uint64(0), event.Elapsed)
}

func TestKeeperStopClosesSubscribers(t *testing.T) {
	keeper := newTestKeeper(t, model.DefaultThresholds())
	events := keeper.Subscribe(4)

	keeper.Start()
	keeper.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("subscriber channel was not closed by Stop")
		}
	}
}

func TestKeeperStopDuringEmitsDoesNotPanic(t *testing.T) {
	for round := 0; round < 50; round++ {
		timer := New(model.TimerConfig{Thresholds: model.DefaultThresholds(), StartRunning: true})
		keeper := NewKeeper(timer, NewRecorder(time.Now()), Config{TickInterval: time.Millisecond})
		keeper.Subscribe(1)
		keeper.Start()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 100; i++ {
				keeper.Reset()
				keeper.ToggleRun()
			}
		}()

		keeper.Stop()
		<-done
	}
}

func TestKeeperRestartsAfterStop(t *testing.T) {
	keeper := newTestKeeper(t, model.Thresholds{Warn: 2 * time.Second, Alert: 4 * time.Second})

	keeper.Start()
	keeper.Stop()

	events := keeper.Subscribe(64)
	keeper.Start()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before a tick arrived")
			}
			if event.Type == EventTick {
				return
			}
		case <-deadline:
			t.Fatal("restarted keeper never ticked")
		}
	}
}

func TestKeeperStartIsIdempotent(t *testing.T) {
	keeper := newTestKeeper(t, model.DefaultThresholds())
	events := keeper.Subscribe(4)

	keeper.Start()
	keeper.Start()

	event := <-events
	assert.Equal(t, EventStateChange, event.Type)
	assert.Equal(t, StateNormal, event.State)
}
