package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/hiitsessions/internal/models"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	t.Cleanup(func() {
		rootMinutes, rootCountdown, rootClock = 0, true, models.ClockFixed
		rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})

	stored := models.DefaultConfig()
	stored.SessionMinutes = 20
	stored.Countdown = false

	require.NoError(t, rootCmd.Flags().Parse([]string{"--clock", "monotonic"}))
	got := applyFlags(rootCmd, stored)

	assert.Equal(t, 20, got.SessionMinutes)
	assert.False(t, got.Countdown)
	assert.Equal(t, models.ClockMonotonic, got.Clock)

	require.NoError(t, rootCmd.Flags().Parse([]string{"--minutes", "7", "--countdown=true"}))
	got = applyFlags(rootCmd, stored)

	assert.Equal(t, 7, got.SessionMinutes)
	assert.True(t, got.Countdown)
}

func TestNewController_UsesConfig(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.SessionMinutes = 9
	cfg.Countdown = false

	ctrl, err := newController(cfg)
	require.NoError(t, err)

	assert.Equal(t, 9, ctrl.SelectedMinutes())
	assert.False(t, ctrl.CountdownEnabled())
}

func TestNewController_RejectsUnknownClock(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Clock = "sundial"

	_, err := newController(cfg)
	assert.Error(t, err)
}
