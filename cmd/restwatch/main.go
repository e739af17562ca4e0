package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"restwatch/internal/config"
	"restwatch/internal/core/stopwatch"
	"restwatch/internal/storage"
	"restwatch/internal/ui/tui"
)

func main() {
	cfg := config.Load()

	timer := stopwatch.New(cfg.TimerConfig())
	recorder := stopwatch.NewRecorder(time.Now())

	program := tea.NewProgram(tui.NewModel(timer, recorder))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "restwatch: %v\n", err)
		os.Exit(1)
	}

	if cfg.StoreSessions {
		if err := storage.SaveSessions(recorder.Sessions()); err != nil {
			log.Printf("save sessions: %v", err)
		}
	}
}
