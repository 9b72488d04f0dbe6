package interval

import (
	"fmt"
	"time"
)

// FormatClock renders d as MM:SS:CC where CC is hundredths of a second.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	totalSeconds := ms / 1000
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	centiseconds := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, centiseconds)
}

// FormatMillis is FormatClock for a raw millisecond count.
func FormatMillis(ms int64) string {
	return FormatClock(time.Duration(ms) * time.Millisecond)
}

// ProgressPercent is total as a share of the session length, clamped to 0-100.
func ProgressPercent(total time.Duration, minutes int) float64 {
	if minutes <= 0 || total <= 0 {
		return 0
	}
	p := float64(total) / float64(time.Duration(minutes)*PhaseLength) * 100
	if p > 100 {
		return 100
	}
	return p
}

// MinutesLabel matches the start button wording: "1 minute", "5 minutes".
func MinutesLabel(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
