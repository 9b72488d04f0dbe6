package timer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/hiitsessions/internal/interval"
	"github.com/adibhanna/hiitsessions/internal/models"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func newModel(t *testing.T, opts interval.Options) (Model, *interval.Controller) {
	t.Helper()
	ctrl, err := interval.New(opts)
	require.NoError(t, err)
	m := New(ctrl)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, ctrl
}

func tick(t *testing.T, m Model, ctrl *interval.Controller) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tickMsg{gen: ctrl.Generation(), t: time.Now()})
}

func TestView_LoadingBeforeSize(t *testing.T) {
	ctrl, err := interval.New(interval.Options{Minutes: 5})
	require.NoError(t, err)

	assert.Equal(t, "Loading...", New(ctrl).View())
}

func TestView_Idle(t *testing.T) {
	m, _ := newModel(t, interval.Options{Minutes: 15, Countdown: true})

	view := m.View()

	assert.Contains(t, view, "Select duration (minutes)")
	assert.Contains(t, view, "START 15 MINUTES")
	assert.Contains(t, view, "3-2-1 countdown: on")
}

func TestPickerSelectsDuration(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 5})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 7, ctrl.SelectedMinutes())
	assert.Contains(t, m.View(), "START 7 MINUTES")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 1, ctrl.SelectedMinutes())
	assert.Contains(t, m.View(), "START 1 MINUTE")
}

func TestStartAndTick(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 5})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "starting acquires a tick")
	assert.Equal(t, models.PhaseHit, ctrl.Phase())

	for i := 0; i < 100; i++ {
		m, cmd = tick(t, m, ctrl)
		require.NotNil(t, cmd)
	}

	assert.Equal(t, time.Second, ctrl.TotalElapsed())
	view := m.View()
	assert.Contains(t, view, "Total: 00:01:00")
	assert.Contains(t, view, "HIT")
	assert.Contains(t, view, "Round 1/5")
}

func TestStaleTickIsDropped(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 5})
	m, _ = update(t, m, runes("s"))
	staleGen := ctrl.Generation()

	m, _ = update(t, m, runes("x"))
	require.Equal(t, models.PhaseIdle, ctrl.Phase())
	m, _ = update(t, m, runes("s"))

	m, cmd := update(t, m, tickMsg{gen: staleGen})

	assert.Nil(t, cmd, "a tick from a released timer must not reschedule")
	assert.Zero(t, ctrl.TotalElapsed())
	_ = m
}

func TestTickWhileIdleIsDropped(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 5})

	_, cmd := tick(t, m, ctrl)

	assert.Nil(t, cmd)
	assert.Equal(t, models.PhaseIdle, ctrl.Phase())
}

func TestStopResetsAndShowsNotice(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 5})
	m, _ = update(t, m, runes("s"))
	for i := 0; i < 3500; i++ {
		m, _ = tick(t, m, ctrl)
	}
	require.Equal(t, 35*time.Second, ctrl.TotalElapsed())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, models.PhaseIdle, ctrl.Phase())
	assert.Zero(t, ctrl.TotalElapsed())
	assert.Contains(t, m.View(), "Stopped at 00:35:00")
}

func TestKeysIgnoredDuringSession(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 5})
	m, _ = update(t, m, runes("s"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runes("c"))
	m, cmd := update(t, m, runes("g"))

	assert.Nil(t, cmd)
	assert.Equal(t, 5, ctrl.SelectedMinutes())
	assert.False(t, ctrl.CountdownEnabled())
	assert.False(t, m.ShouldOpenSettings())
	assert.Equal(t, models.PhaseHit, ctrl.Phase())
}

func TestSessionCompletes(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 1})
	m, _ = update(t, m, runes("s"))

	var cmd tea.Cmd
	ticks := 0
	for ctrl.Running() {
		m, cmd = tick(t, m, ctrl)
		ticks++
	}

	assert.Equal(t, 6000, ticks)
	assert.Nil(t, cmd, "completion releases the tick")
	assert.Equal(t, 1, m.Completed())
	assert.Contains(t, m.View(), "Session complete! 1 minute of intervals")
}

func TestCountdownFlow(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 2, Countdown: true})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, models.PhaseCountdown, ctrl.Phase())

	view := m.View()
	assert.Contains(t, view, "GET READY")
	assert.Contains(t, view, "3")

	for i := 0; i < 300; i++ {
		m, _ = tick(t, m, ctrl)
	}

	assert.Equal(t, models.PhaseHit, ctrl.Phase())
	assert.Contains(t, m.View(), "GO! HIT")
}

func TestToggleCountdown(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 2})

	m, _ = update(t, m, runes("c"))
	assert.True(t, ctrl.CountdownEnabled())
	assert.Contains(t, m.View(), "3-2-1 countdown: on")

	m, _ = update(t, m, runes("c"))
	assert.False(t, ctrl.CountdownEnabled())
}

func TestQuitTearsDownSession(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 5})
	m, _ = update(t, m, runes("s"))
	m, _ = tick(t, m, ctrl)

	m, cmd := update(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.ShouldQuit())
	assert.Equal(t, models.PhaseIdle, ctrl.Phase())
	assert.Zero(t, ctrl.TotalElapsed())
}

func TestOpenSettings(t *testing.T) {
	m, _ := newModel(t, interval.Options{Minutes: 5})

	m, cmd := update(t, m, runes("g"))

	require.NotNil(t, cmd)
	assert.True(t, m.ShouldOpenSettings())
	assert.False(t, m.ShouldQuit())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newModel(t, interval.Options{Minutes: 5})

	m, _ = update(t, m, runes("?"))
	assert.Contains(t, m.View(), "HIIT Sessions Help")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "Select duration (minutes)")
}

func TestRestPhaseView(t *testing.T) {
	m, ctrl := newModel(t, interval.Options{Minutes: 3})
	m, _ = update(t, m, runes("s"))
	for i := 0; i < 6050; i++ {
		m, _ = tick(t, m, ctrl)
	}

	view := m.View()
	assert.Equal(t, models.PhaseRest, ctrl.Phase())
	assert.Contains(t, view, "REST")
	assert.Contains(t, view, "00:00:50")
	assert.Contains(t, view, "Total: 01:00:50")
	assert.Contains(t, view, "Round 2/3")
}
