package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00"},
		{10, "00:00:01"},
		{999, "00:00:99"},
		{61000, "01:01:00"},
		{125430, "02:05:43"},
		{3600000, "60:00:00"},
		{-50, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMillis(tt.ms))
		})
	}
}

func TestFormatClockTruncatesBelowHundredths(t *testing.T) {
	assert.Equal(t, "00:01:23", FormatClock(time.Second+239*time.Millisecond+900*time.Microsecond))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, ProgressPercent(0, 5))
	assert.Equal(t, 50.0, ProgressPercent(150*time.Second, 5))
	assert.Equal(t, 100.0, ProgressPercent(5*time.Minute, 5))
	assert.Equal(t, 100.0, ProgressPercent(time.Hour, 5), "clamped")
	assert.Equal(t, 0.0, ProgressPercent(time.Minute, 0))
	assert.Equal(t, 0.0, ProgressPercent(-time.Minute, 5))
}

func TestMinutesLabel(t *testing.T) {
	assert.Equal(t, "1 minute", MinutesLabel(1))
	assert.Equal(t, "15 minutes", MinutesLabel(15))
}
