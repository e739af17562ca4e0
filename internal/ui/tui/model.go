// Package tui implements the terminal face of restwatch.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"restwatch/internal/core/stopwatch"
)

// TickMsg is emitted once per second to advance the timer.
type TickMsg time.Time

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Reset, keys.Quit}
}

func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{keys.Toggle, keys.Reset, keys.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause/resume"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	normalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	screenStyle  = lipgloss.NewStyle().Padding(1, 2)
)

// Model is the bubbletea model for the stopwatch screen.
type Model struct {
	timer    *stopwatch.Timer
	recorder *stopwatch.Recorder
	keys     keyMap
	help     help.Model
	now      func() time.Time
}

// NewModel builds the stopwatch screen around an already constructed
// timer and recorder.
func NewModel(timer *stopwatch.Timer, recorder *stopwatch.Recorder) Model {
	return Model{
		timer:    timer,
		recorder: recorder,
		keys:     defaultKeyMap(),
		help:     help.New(),
		now:      time.Now,
	}
}

// Init schedules the first tick.
func (model Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(at time.Time) tea.Msg {
		return TickMsg(at)
	})
}

// Update handles ticks and key presses.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		model.timer.Tick()
		return model, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(msg, model.keys.Toggle):
			wasRunning := model.timer.Running()
			model.timer.ToggleRun()
			model.recorder.Toggle(wasRunning, model.now())
		case key.Matches(msg, model.keys.Reset):
			model.timer.Reset()
		}

	case tea.WindowSizeMsg:
		model.help.Width = msg.Width
	}

	return model, nil
}

// View renders the color-coded clock, the break count while paused, and
// the key help footer.
func (model Model) View() string {
	clock := stopwatch.FormatClock(model.timer.Elapsed(), false)

	var lines []string
	if model.timer.Running() {
		lines = append(lines, styleFor(model.timer.State()).Render(clock))
	} else {
		lines = append(lines, pausedStyle.Render("PAUSED "+clock))
		lines = append(lines, detailStyle.Render(fmt.Sprintf("breaks: %d", model.recorder.Breaks())))
	}
	lines = append(lines, "", model.help.View(model.keys))

	return screenStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func styleFor(state stopwatch.State) lipgloss.Style {
	switch state {
	case stopwatch.StateBreakOverdue:
		return overdueStyle
	case stopwatch.StateBreakDue:
		return dueStyle
	default:
		return normalStyle
	}
}
