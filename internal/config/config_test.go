package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("catalog", "", "")
	fs.String("log-file", "", "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Config{
		TransitionDelay: DefaultTransitionDelay,
		Mouse:           true,
	}, cfg)
}

func TestLoad_FileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	data := "catalog: school.yaml\ntransitionDelay: 150ms\nmouse: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "melodious.yaml"), []byte(data), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "school.yaml", cfg.Catalog)
	assert.Equal(t, 150*time.Millisecond, cfg.TransitionDelay)
	assert.False(t, cfg.Mouse)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logFile: from-file.log\n"), 0o644))
	t.Setenv("MELODIOUS_LOGFILE", "from-env.log")
	t.Setenv("MELODIOUS_TRANSITIONDELAY", "1s")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.log", cfg.LogFile)
	assert.Equal(t, time.Second, cfg.TransitionDelay)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MELODIOUS_CATALOG", "env.yaml")

	cfg, err := Load("", newFlags(t, "--catalog", "flag.yaml", "--verbose", "--log-file", "ui.log"))
	require.NoError(t, err)
	assert.Equal(t, "flag.yaml", cfg.Catalog)
	assert.Equal(t, "ui.log", cfg.LogFile)
	assert.True(t, cfg.Verbose)
}

func TestLoad_UnsetFlagsKeepEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MELODIOUS_CATALOG", "env.yaml")

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.Catalog)
}

func TestLoad_NegativeDelay(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MELODIOUS_TRANSITIONDELAY", "-5ms")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transitionDelay")
}
