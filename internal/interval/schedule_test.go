package interval

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/hiitsessions/internal/models"
)

func TestSchedule(t *testing.T) {
	segments, err := Schedule(5)
	require.NoError(t, err)
	require.Len(t, segments, 5)

	want := []models.Phase{models.PhaseHit, models.PhaseRest, models.PhaseHit, models.PhaseRest, models.PhaseHit}
	for i, s := range segments {
		assert.Equal(t, i+1, s.Round)
		assert.Equal(t, want[i], s.Phase)
		assert.Equal(t, time.Duration(i)*time.Minute, s.Start)
		assert.Equal(t, PhaseLength, s.Length)
	}

	assert.Equal(t, 3*time.Minute, WorkTime(segments))
}

func TestScheduleMatchesController(t *testing.T) {
	segments, err := Schedule(4)
	require.NoError(t, err)

	c, err := New(Options{Minutes: 4})
	require.NoError(t, err)
	require.NoError(t, c.Start())

	for _, s := range segments {
		assert.Equal(t, s.Phase, c.Phase(), "round %d", s.Round)
		assert.Equal(t, s.Round, c.State().Round())
		tickFor(c, s.Length)
	}
	assert.Equal(t, models.PhaseIdle, c.Phase())
}

func TestSchedule_OutOfRange(t *testing.T) {
	_, err := Schedule(0)
	assert.True(t, errors.Is(err, ErrDurationOutOfRange))
}
