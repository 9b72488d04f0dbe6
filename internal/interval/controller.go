// Package interval implements the HIIT session state machine: phase
// alternation, elapsed-time accounting and the projections derived from them.
package interval

import (
	"time"

	"github.com/pkg/errors"

	"github.com/adibhanna/hiitsessions/internal/models"
)

const (
	// PhaseLength is the fixed length of every hit and rest phase.
	PhaseLength = time.Minute
	// DefaultCountdownSeconds is the length of the 3-2-1 countdown.
	DefaultCountdownSeconds = 3
)

// Event is something a step of the controller caused.
type Event int

const (
	EventCountdown Event = iota + 1
	EventWorkStarted
	EventPhaseFlipped
	EventCompleted
)

func (e Event) String() string {
	switch e {
	case EventCountdown:
		return "countdown"
	case EventWorkStarted:
		return "work_started"
	case EventPhaseFlipped:
		return "phase_flipped"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

type Options struct {
	Minutes          int
	Countdown        bool
	CountdownSeconds int
	Source           TickSource
}

// State is a read-only snapshot of the controller.
type State struct {
	Phase              models.Phase
	PhaseElapsed       time.Duration
	TotalElapsed       time.Duration
	Minutes            int
	CountdownRemaining int
	Generation         uint64
}

// Target is the total session length.
func (s State) Target() time.Duration {
	return time.Duration(s.Minutes) * PhaseLength
}

func (s State) Progress() float64 {
	return ProgressPercent(s.TotalElapsed, s.Minutes)
}

// Round is the 1-based index of the current phase within the session.
func (s State) Round() int {
	if !s.Phase.Active() {
		return 0
	}
	return int(s.TotalElapsed/PhaseLength) + 1
}

// Controller owns one session at a time. It is not safe for concurrent use;
// a single driving loop owns it.
type Controller struct {
	phase        models.Phase
	phaseElapsed time.Duration
	totalElapsed time.Duration
	minutes      int

	countdown          bool
	countdownSeconds   int
	countdownRemaining int
	countdownElapsed   time.Duration

	source     TickSource
	generation uint64
}

func New(opts Options) (*Controller, error) {
	if opts.Minutes == 0 {
		opts.Minutes = models.DefaultConfig().SessionMinutes
	}
	if err := validateMinutes(opts.Minutes); err != nil {
		return nil, err
	}
	if opts.CountdownSeconds <= 0 {
		opts.CountdownSeconds = DefaultCountdownSeconds
	}
	if opts.Source == nil {
		opts.Source = FixedStep{Interval: TickInterval}
	}

	return &Controller{
		phase:            models.PhaseIdle,
		minutes:          opts.Minutes,
		countdown:        opts.Countdown,
		countdownSeconds: opts.CountdownSeconds,
		source:           opts.Source,
	}, nil
}

func validateMinutes(minutes int) error {
	if minutes < models.MinSessionMinutes || minutes > models.MaxSessionMinutes {
		return errors.Wrapf(ErrDurationOutOfRange, "%d minutes (allowed %d-%d)",
			minutes, models.MinSessionMinutes, models.MaxSessionMinutes)
	}
	return nil
}

func (c *Controller) State() State {
	return State{
		Phase:              c.phase,
		PhaseElapsed:       c.phaseElapsed,
		TotalElapsed:       c.totalElapsed,
		Minutes:            c.minutes,
		CountdownRemaining: c.countdownRemaining,
		Generation:         c.generation,
	}
}

func (c *Controller) Phase() models.Phase { return c.phase }
func (c *Controller) PhaseElapsed() time.Duration { return c.phaseElapsed }
func (c *Controller) TotalElapsed() time.Duration { return c.totalElapsed }
func (c *Controller) SelectedMinutes() int { return c.minutes }
func (c *Controller) CountdownRemaining() int { return c.countdownRemaining }
func (c *Controller) CountdownEnabled() bool { return c.countdown }
func (c *Controller) Running() bool { return c.phase.Running() }

// Generation identifies the currently acquired repeating timer. It changes
// on every start and every stop, so a tick scheduled for an earlier
// generation must be discarded by the driver.
func (c *Controller) Generation() uint64 { return c.generation }

// SelectDuration sets the session length. Only allowed while idle.
func (c *Controller) SelectDuration(minutes int) error {
	if c.phase != models.PhaseIdle {
		return errors.Wrapf(ErrInvalidTransition, "select duration during %s", c.phase)
	}
	if err := validateMinutes(minutes); err != nil {
		return err
	}
	c.minutes = minutes
	return nil
}

// SetCountdown toggles the countdown variant. Only allowed while idle.
func (c *Controller) SetCountdown(enabled bool) error {
	if c.phase != models.PhaseIdle {
		return errors.Wrapf(ErrInvalidTransition, "toggle countdown during %s", c.phase)
	}
	c.countdown = enabled
	return nil
}

// Start begins a session, either straight into a hit phase or behind the
// countdown.
func (c *Controller) Start() error {
	if c.phase != models.PhaseIdle {
		return errors.Wrapf(ErrInvalidTransition, "start during %s", c.phase)
	}

	c.generation++
	c.source.Reset()

	if c.countdown {
		c.phase = models.PhaseCountdown
		c.countdownRemaining = c.countdownSeconds
		c.countdownElapsed = 0
		c.phaseElapsed = 0
		c.totalElapsed = 0
		return nil
	}

	c.enterWork()
	return nil
}

// Stop ends the session and releases the timer.
func (c *Controller) Stop() error {
	if c.phase == models.PhaseIdle {
		return errors.Wrap(ErrInvalidTransition, "stop while idle")
	}
	c.reset()
	return nil
}

// Teardown stops a running session, if any. Safe to call in any phase.
func (c *Controller) Teardown() {
	if c.phase != models.PhaseIdle {
		c.reset()
	}
}

// Tick advances the session by one step of the tick source. No-op while idle.
func (c *Controller) Tick() []Event {
	if c.phase == models.PhaseIdle {
		return nil
	}
	return c.Advance(c.source.Step())
}

// Advance credits d to the session and applies the transition rules:
// a phase flips once it has run a full PhaseLength, and the session stops
// once the total reaches the selected length. Stopping wins over a flip on
// the same step.
func (c *Controller) Advance(d time.Duration) []Event {
	if d <= 0 {
		return nil
	}

	switch c.phase {
	case models.PhaseCountdown:
		return c.advanceCountdown(d)
	case models.PhaseHit, models.PhaseRest:
		return c.advanceActive(d)
	default:
		return nil
	}
}

func (c *Controller) advanceCountdown(d time.Duration) []Event {
	var events []Event

	c.countdownElapsed += d
	for c.countdownRemaining > 0 && c.countdownElapsed >= time.Second {
		c.countdownElapsed -= time.Second
		c.countdownRemaining--
		events = append(events, EventCountdown)
	}

	if c.countdownRemaining == 0 {
		c.enterWork()
		events = append(events, EventWorkStarted)
	}

	return events
}

func (c *Controller) advanceActive(d time.Duration) []Event {
	var events []Event

	c.phaseElapsed += d
	c.totalElapsed += d

	for c.phaseElapsed >= PhaseLength {
		c.phaseElapsed -= PhaseLength
		c.flip()
		events = append(events, EventPhaseFlipped)
	}

	if c.totalElapsed >= time.Duration(c.minutes)*PhaseLength {
		c.reset()
		return []Event{EventCompleted}
	}

	return events
}

func (c *Controller) enterWork() {
	c.phase = models.PhaseHit
	c.phaseElapsed = 0
	c.totalElapsed = 0
	c.countdownRemaining = 0
	c.countdownElapsed = 0
}

func (c *Controller) flip() {
	if c.phase == models.PhaseHit {
		c.phase = models.PhaseRest
	} else {
		c.phase = models.PhaseHit
	}
}

func (c *Controller) reset() {
	c.phase = models.PhaseIdle
	c.phaseElapsed = 0
	c.totalElapsed = 0
	c.countdownRemaining = 0
	c.countdownElapsed = 0
	c.generation++
}
