package stopwatch

import "fmt"

// FormatClock renders whole seconds as MM:SS, switching to HH:MM:SS
// when hours are nonzero or full is set.
func FormatClock(seconds uint64, full bool) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours != 0 || full {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
