// Package gui implements the desktop face of restwatch.
package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"restwatch/internal/core/stopwatch"
)

// Config contains window settings taken from the user configuration.
type Config struct {
	Width  float32
	Height float32
}

var (
	colorNormal  = color.NRGBA{G: 0xcc, A: 0xff}
	colorDue     = color.NRGBA{R: 0xe6, G: 0xc8, A: 0xff}
	colorOverdue = color.NRGBA{R: 0xe6, G: 0x3c, B: 0x3c, A: 0xff}
	colorPaused  = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// Window is the main stopwatch window.
type Window struct {
	window fyne.Window
	clock  *canvas.Text
	breaks *widget.Label
	toggle *widget.Button
}

// New builds the main window. onToggle and onReset are invoked from the
// Fyne event loop.
func New(app fyne.App, config Config, onToggle, onReset func()) *Window {
	window := app.NewWindow("Restwatch")

	clock := canvas.NewText("00:00", colorNormal)
	clock.TextSize = 40
	clock.TextStyle = fyne.TextStyle{Monospace: true}
	clock.Alignment = fyne.TextAlignCenter

	breaks := widget.NewLabel("")
	breaks.Alignment = fyne.TextAlignCenter
	breaks.Hide()

	toggle := widget.NewButton("Pause", onToggle)
	reset := widget.NewButton("Reset", onReset)

	content := container.NewVBox(
		clock,
		breaks,
		container.NewGridWithColumns(2, toggle, reset),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(config.Width, config.Height))
	window.CenterOnScreen()

	return &Window{
		window: window,
		clock:  clock,
		breaks: breaks,
		toggle: toggle,
	}
}

// Apply updates the display from a Keeper event. It must run on the
// Fyne goroutine; the event consumer wraps it in fyne.Do.
func (win *Window) Apply(event stopwatch.Event) {
	win.clock.Text = stopwatch.FormatClock(event.Elapsed, false)
	win.clock.Color = clockColor(event)
	win.clock.Refresh()

	if event.Running {
		win.toggle.SetText("Pause")
		win.breaks.Hide()
	} else {
		win.toggle.SetText("Resume")
		win.breaks.SetText(fmt.Sprintf("breaks: %d", event.Breaks))
		win.breaks.Show()
	}
}

// Show displays the window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

func clockColor(event stopwatch.Event) color.Color {
	if !event.Running {
		return colorPaused
	}
	switch event.State {
	case stopwatch.StateBreakOverdue:
		return colorOverdue
	case stopwatch.StateBreakDue:
		return colorDue
	default:
		return colorNormal
	}
}
