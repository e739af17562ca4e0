package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"restwatch/internal/config"
	"restwatch/internal/core/stopwatch"
	"restwatch/internal/platform"
	"restwatch/internal/storage"
	"restwatch/internal/ui/gui"
	"restwatch/resources"
)

func main() {
	guard, err := platform.AcquireLock()
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	if _, err := config.EnsureDefaultFile(); err != nil {
		log.Printf("write default config: %v", err)
	}
	cfg := config.Load()

	fyneApp := app.NewWithID("dev.restwatch.app")
	activeIcon := resources.MustLogo("restwatch_active.png")
	pausedIcon := resources.MustLogo("restwatch_paused.png")
	fyneApp.SetIcon(activeIcon)

	timer := stopwatch.New(cfg.TimerConfig())
	recorder := stopwatch.NewRecorder(time.Now())
	keeper := stopwatch.NewKeeper(timer, recorder, stopwatch.Config{TickInterval: time.Second})

	mainWindow := gui.New(fyneApp, gui.Config{
		Width:  float32(cfg.WindowWidth),
		Height: float32(cfg.WindowHeight),
	}, func() {
		keeper.ToggleRun()
	}, func() {
		keeper.Reset()
	})

	var trayManager *gui.Tray
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = gui.NewTray(desktopApp, gui.TrayCallbacks{
			OnShow:        mainWindow.Show,
			OnTogglePause: func() { keeper.ToggleRun() },
			OnReset:       keeper.Reset,
			OnQuit: func() {
				keeper.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(activeIcon)
	}

	events := keeper.Subscribe(5)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				mainWindow.Apply(event)
				if trayManager == nil {
					return
				}
				trayManager.SetStatus("elapsed " + stopwatch.FormatClock(event.Elapsed, false))
				if event.Type == stopwatch.EventStateChange {
					trayManager.SetPaused(!event.Running)
					if event.Running {
						desktopApp.SetSystemTrayIcon(activeIcon)
					} else {
						desktopApp.SetSystemTrayIcon(pausedIcon)
					}
				}
			})
		}
	}()

	keeper.Start()
	mainWindow.Show()
	fyneApp.Run()

	keeper.Stop()
	if cfg.StoreSessions {
		if err := storage.SaveSessions(recorder.Sessions()); err != nil {
			log.Printf("save sessions: %v", err)
		}
	}
}
