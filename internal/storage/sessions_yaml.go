// Package storage persists the session history as YAML under the user
// config directory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"restwatch/internal/config"
	"restwatch/internal/core/stopwatch"
)

const sessionsFileName = "sessions.yaml"

type yamlSession struct {
	Break     bool   `yaml:"break"`
	StartUnix int64  `yaml:"start_unix"`
	EndUnix   int64  `yaml:"end_unix"`
	Clock     string `yaml:"clock"`
}

type yamlHistory struct {
	Sessions []yamlSession `yaml:"sessions"`
}

// SaveSessions writes the recorded spans of the last run, replacing any
// previous history.
func SaveSessions(sessions []stopwatch.Session) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	return saveTo(filepath.Join(dir, sessionsFileName), sessions)
}

// LoadSessions reads the stored history. A missing file yields an empty
// history.
func LoadSessions() ([]stopwatch.Session, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return loadFrom(filepath.Join(dir, sessionsFileName))
}

func saveTo(path string, sessions []stopwatch.Session) error {
	history := yamlHistory{Sessions: make([]yamlSession, 0, len(sessions))}
	for _, session := range sessions {
		span := session.End.Sub(session.Start)
		if span < 0 {
			span = 0
		}
		history.Sessions = append(history.Sessions, yamlSession{
			Break:     session.Break,
			StartUnix: session.Start.Unix(),
			EndUnix:   session.End.Unix(),
			Clock:     stopwatch.FormatClock(uint64(span/time.Second), true),
		})
	}

	serialized, err := yaml.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal sessions yaml: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write sessions file: %w", err)
	}
	return nil
}

func loadFrom(path string) ([]stopwatch.Session, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sessions file: %w", err)
	}

	var history yamlHistory
	if err := yaml.Unmarshal(rawData, &history); err != nil {
		return nil, fmt.Errorf("parse sessions yaml: %w", err)
	}

	sessions := make([]stopwatch.Session, 0, len(history.Sessions))
	for _, stored := range history.Sessions {
		sessions = append(sessions, stopwatch.Session{
			Break: stored.Break,
			Start: time.Unix(stored.StartUnix, 0),
			End:   time.Unix(stored.EndUnix, 0),
		})
	}
	return sessions, nil
}
