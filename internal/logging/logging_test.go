package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel), "nop logger should discard everything")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Info("overlay opened", zap.String("course", "English Pop"))
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"overlay opened"`)
	assert.Contains(t, out, `"course":"English Pop"`)
	assert.Contains(t, out, `"logger":"melodious"`)
	assert.NotContains(t, out, "hidden at info level")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("level settled")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level settled")
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "ui.log"), false)
	assert.Error(t, err)
}
