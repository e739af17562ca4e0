package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restwatch/internal/core/model"
	"restwatch/internal/core/stopwatch"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	timer := stopwatch.New(model.TimerConfig{
		Thresholds:   model.Thresholds{Warn: 2 * time.Second, Alert: 4 * time.Second},
		StartRunning: true,
	})
	return NewModel(timer, stopwatch.NewRecorder(time.Now()))
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTickAdvancesTimer(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)

	assert.Equal(t, uint64(1), m.timer.Elapsed())
	assert.NotNil(t, cmd, "every tick must schedule the next one")
}

func TestToggleKeyPausesAndRecords(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyPress('p'))
	m = next.(Model)
	require.False(t, m.timer.Running())
	assert.Equal(t, 0, m.recorder.Breaks())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	require.True(t, m.timer.Running())
	assert.Equal(t, 1, m.recorder.Breaks())
}

func TestTickWhilePausedDoesNotAdvance(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyPress('p'))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)

	assert.Equal(t, uint64(0), m.timer.Elapsed())
}

func TestResetKeyZeroesTimer(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 5; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	require.Equal(t, stopwatch.StateBreakOverdue, m.timer.State())

	next, _ := m.Update(keyPress('r'))
	m = next.(Model)

	assert.Equal(t, uint64(0), m.timer.Elapsed())
	assert.Equal(t, stopwatch.StateNormal, m.timer.State())
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)

	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestViewShowsClockAndPausedState(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	assert.Contains(t, m.View(), "00:01")

	next, _ = m.Update(keyPress('p'))
	m = next.(Model)
	view := m.View()
	assert.Contains(t, view, "PAUSED")
	assert.Contains(t, view, "breaks: 0")
}
