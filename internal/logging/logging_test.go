package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, err := New("debug", path)
	require.NoError(t, err)
	logger.Debug("card played", zap.String("card", "Blue 5"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"card played"`)
	assert.Contains(t, string(data), `"card":"Blue 5"`)
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, err := New("warn", path)
	require.NoError(t, err)
	logger.Info("ignored")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ignored")
}

func TestNewErrors(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "game.log"))
	assert.Error(t, err)

	logger, err := New("info", "")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
