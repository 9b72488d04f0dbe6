package interval

import (
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"

	"github.com/adibhanna/hiitsessions/internal/models"
)

// TickInterval is the nominal step of the driving loop.
const TickInterval = 10 * time.Millisecond

// TickSource decides how much time a single tick accounts for.
// Reset is called whenever the controller acquires a new timer.
type TickSource interface {
	Reset()
	Step() time.Duration
}

// FixedStep credits the nominal interval on every tick regardless of how
// much wall time actually passed.
type FixedStep struct {
	Interval time.Duration
}

func (FixedStep) Reset() {}

func (f FixedStep) Step() time.Duration {
	if f.Interval <= 0 {
		return TickInterval
	}
	return f.Interval
}

// ClockSource credits the time measured on the clock since the previous tick.
type ClockSource struct {
	clock time2.Clock
	last  time.Time
}

func NewClockSource(clock time2.Clock) *ClockSource {
	if clock == nil {
		clock = time2.DefaultClock
	}
	return &ClockSource{clock: clock, last: clock.Now()}
}

func (s *ClockSource) Reset() {
	s.last = s.clock.Now()
}

func (s *ClockSource) Step() time.Duration {
	now := s.clock.Now()
	d := now.Sub(s.last)
	s.last = now
	if d < 0 {
		return 0
	}
	return d
}

// NewTickSource maps a config clock mode onto a TickSource.
func NewTickSource(mode string, clock time2.Clock) (TickSource, error) {
	switch mode {
	case "", models.ClockFixed:
		return FixedStep{Interval: TickInterval}, nil
	case models.ClockMonotonic:
		return NewClockSource(clock), nil
	default:
		return nil, errors.Errorf("unknown clock mode %q", mode)
	}
}
