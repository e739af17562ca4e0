package stopwatch

import "time"

// Session is one run or break span between two toggles.
type Session struct {
	Break bool
	Start time.Time
	End   time.Time
}

// Recorder accumulates the run/break history of a single process.
// Spans are closed lazily: each toggle ends the current span and starts
// the next one.
type Recorder struct {
	sessions  []Session
	spanStart time.Time
}

// NewRecorder starts the first span at the given time.
func NewRecorder(now time.Time) *Recorder {
	return &Recorder{spanStart: now}
}

// Toggle closes the current span. wasRunning tells whether the span
// that just ended was an active one; an ended paused span counts as a
// break.
func (recorder *Recorder) Toggle(wasRunning bool, now time.Time) {
	recorder.sessions = append(recorder.sessions, Session{
		Break: !wasRunning,
		Start: recorder.spanStart,
		End:   now,
	})
	recorder.spanStart = now
}

// Sessions returns a copy of the recorded spans.
func (recorder *Recorder) Sessions() []Session {
	return append([]Session(nil), recorder.sessions...)
}

// Breaks returns the number of completed break spans.
func (recorder *Recorder) Breaks() int {
	count := 0
	for _, session := range recorder.sessions {
		if session.Break {
			count++
		}
	}
	return count
}
