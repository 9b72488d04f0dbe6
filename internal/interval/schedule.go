package interval

import (
	"time"

	"github.com/adibhanna/hiitsessions/internal/models"
)

// Segment is one phase of a planned session.
type Segment struct {
	Round  int
	Phase  models.Phase
	Start  time.Duration
	Length time.Duration
}

// Schedule lays out the phases a session of the given length will run
// through, starting with a hit phase.
func Schedule(minutes int) ([]Segment, error) {
	if err := validateMinutes(minutes); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, minutes)
	phase := models.PhaseHit
	for i := 0; i < minutes; i++ {
		segments = append(segments, Segment{
			Round:  i + 1,
			Phase:  phase,
			Start:  time.Duration(i) * PhaseLength,
			Length: PhaseLength,
		})
		if phase == models.PhaseHit {
			phase = models.PhaseRest
		} else {
			phase = models.PhaseHit
		}
	}
	return segments, nil
}

// WorkTime is the total time spent in hit phases.
func WorkTime(segments []Segment) time.Duration {
	var total time.Duration
	for _, s := range segments {
		if s.Phase == models.PhaseHit {
			total += s.Length
		}
	}
	return total
}
