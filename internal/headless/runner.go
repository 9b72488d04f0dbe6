// Package headless drives a session without the terminal UI, printing plain
// progress lines. Used when stdout is not a terminal or --headless is set.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/adibhanna/hiitsessions/internal/interval"
	"github.com/adibhanna/hiitsessions/internal/models"
	"github.com/adibhanna/hiitsessions/internal/ui/theme"
)

// TickerFunc acquires a repeating timer and returns its channel and the
// function that releases it.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

// RealTicker is a TickerFunc backed by time.Ticker.
func RealTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

type Summary struct {
	SessionID string
	Minutes   int
	Completed bool
	Elapsed   time.Duration
	Flips     int
}

type Runner struct {
	ctrl        *interval.Controller
	out         io.Writer
	newTicker   TickerFunc
	statusEvery time.Duration
}

type Option func(*Runner)

func WithTicker(f TickerFunc) Option {
	return func(r *Runner) { r.newTicker = f }
}

// WithStatusEvery prints a status line each time the total clock crosses a
// multiple of d. Zero disables status lines.
func WithStatusEvery(d time.Duration) Option {
	return func(r *Runner) { r.statusEvery = d }
}

func New(ctrl *interval.Controller, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		ctrl:        ctrl,
		out:         out,
		newTicker:   RealTicker,
		statusEvery: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts a session and drives it until it completes or ctx is done.
// Cancelling ctx stops the session; that is not an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if err := r.ctrl.Start(); err != nil {
		return Summary{}, err
	}
	defer r.ctrl.Teardown()

	summary := Summary{
		SessionID: uuid.New().String(),
		Minutes:   r.ctrl.SelectedMinutes(),
	}
	logger := log.With().Str("session_id", summary.SessionID).Int("minutes", summary.Minutes).Logger()
	logger.Info().Bool("countdown", r.ctrl.CountdownEnabled()).Msg("session started")

	fmt.Fprintf(r.out, "Starting %s session\n", interval.MinutesLabel(summary.Minutes))
	if r.ctrl.Phase() == models.PhaseCountdown {
		fmt.Fprintf(r.out, "%d...\n", r.ctrl.CountdownRemaining())
	} else {
		r.printPhase()
	}

	ticks, release := r.newTicker(interval.TickInterval)
	defer release()

	for {
		select {
		case <-ctx.Done():
			summary.Elapsed = r.ctrl.TotalElapsed()
			_ = r.ctrl.Stop()
			logger.Info().Int64("total_ms", summary.Elapsed.Milliseconds()).Msg("session stopped")
			fmt.Fprintf(r.out, "Session stopped at %s\n", interval.FormatClock(summary.Elapsed))
			return summary, nil

		case <-ticks:
			before := r.ctrl.TotalElapsed()
			for _, event := range r.ctrl.Tick() {
				switch event {
				case interval.EventCountdown:
					if n := r.ctrl.CountdownRemaining(); n > 0 {
						fmt.Fprintf(r.out, "%d...\n", n)
					}
				case interval.EventWorkStarted:
					logger.Debug().Msg("countdown finished")
					fmt.Fprintln(r.out, theme.CountdownLabel(0))
					r.printPhase()
				case interval.EventPhaseFlipped:
					summary.Flips++
					logger.Info().Str("phase", r.ctrl.Phase().String()).
						Int64("total_ms", r.ctrl.TotalElapsed().Milliseconds()).Msg("phase flipped")
					r.printPhase()
				case interval.EventCompleted:
					summary.Completed = true
					summary.Elapsed = time.Duration(summary.Minutes) * interval.PhaseLength
					logger.Info().Msg("session completed")
					fmt.Fprintf(r.out, "Session complete: %s\n", interval.FormatClock(summary.Elapsed))
					return summary, nil
				}
			}
			r.maybePrintStatus(before)
		}
	}
}

func (r *Runner) printPhase() {
	fmt.Fprintf(r.out, "[%s] %s\n", interval.FormatClock(r.ctrl.TotalElapsed()), theme.PhaseLabel(r.ctrl.Phase()))
}

func (r *Runner) maybePrintStatus(before time.Duration) {
	if r.statusEvery <= 0 || !r.ctrl.Phase().Active() {
		return
	}
	now := r.ctrl.TotalElapsed()
	if now/r.statusEvery == before/r.statusEvery {
		return
	}
	s := r.ctrl.State()
	fmt.Fprintf(r.out, "  %s %s  total %s  %3.0f%%\n",
		theme.PhaseLabel(s.Phase),
		interval.FormatClock(s.PhaseElapsed),
		interval.FormatClock(s.TotalElapsed),
		s.Progress(),
	)
}
