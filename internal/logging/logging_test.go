package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	logger.Warn().Str("phase", "hit").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"phase":"hit"`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestSetupWritesToFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Setup(path, "info")
	require.NoError(t, err)

	log.Info().Str("session_id", "abc").Msg("session started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"abc"`)
}

func TestSetupWithoutPath(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	closer, err := Setup("", "info")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestSetupBadLevel(t *testing.T) {
	_, err := Setup("", "chatty")
	assert.Error(t, err)
}
