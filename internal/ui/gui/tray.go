package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// TrayCallbacks defines tray action handlers.
type TrayCallbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnReset       func()
	OnQuit        func()
}

// Tray handles system tray state.
type Tray struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	callbacks   TrayCallbacks
	paused      bool
	statusLabel string
}

// NewTray creates a tray manager with the provided callbacks.
func NewTray(app desktop.App, callbacks TrayCallbacks) *Tray {
	tray := &Tray{
		app:       app,
		callbacks: callbacks,
	}

	tray.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	tray.statusItem.Disabled = true

	tray.pauseItem = fyne.NewMenuItem("Pause", func() {
		if tray.callbacks.OnTogglePause != nil {
			tray.callbacks.OnTogglePause()
		}
	})

	tray.refreshMenu()
	return tray
}

// SetStatus updates the status label.
func (tray *Tray) SetStatus(status string) {
	tray.statusLabel = status
	tray.refreshStatus()
}

// SetPaused updates pause state.
func (tray *Tray) SetPaused(paused bool) {
	tray.paused = paused
	if paused {
		tray.pauseItem.Label = "Resume"
	} else {
		tray.pauseItem.Label = "Pause"
	}
	tray.refreshStatus()
}

func (tray *Tray) refreshStatus() {
	status := tray.statusLabel
	if tray.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	tray.statusItem.Label = fmt.Sprintf("Status: %s", status)
	tray.refreshMenu()
}

func (tray *Tray) refreshMenu() {
	if tray.app == nil {
		return
	}
	tray.app.SetSystemTrayMenu(fyne.NewMenu("Restwatch",
		tray.statusItem,
		fyne.NewMenuItem("Show window", func() {
			if tray.callbacks.OnShow != nil {
				tray.callbacks.OnShow()
			}
		}),
		tray.pauseItem,
		fyne.NewMenuItem("Reset", func() {
			if tray.callbacks.OnReset != nil {
				tray.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if tray.callbacks.OnQuit != nil {
				tray.callbacks.OnQuit()
			}
		}),
	))
}
