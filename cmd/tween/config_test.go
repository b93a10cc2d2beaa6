package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "linear", cfg.Ease)
	assert.Equal(t, defaultSamples, cfg.Samples)
	assert.InDelta(t, 60.0, cfg.FPS, 1e-12)
	assert.Equal(t, defaultWidth, cfg.Width)
	assert.False(t, cfg.Plot)
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig([]string{"-e", "sine-out", "-n", "5", "-p", "--log-level", "warn"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "sine-out", cfg.Ease)
	assert.Equal(t, 5, cfg.Samples)
	assert.True(t, cfg.Plot)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("TWEEN_SAMPLES", "7")
	t.Setenv("TWEEN_LOG_LEVEL", "debug")

	cfg, err := loadConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Samples)
	assert.Equal(t, "debug", cfg.LogLevel)

	cfg, err = loadConfig([]string{"--samples", "3"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Samples, "flags win over the environment")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ease: bounce-out\nwidth: 30\n"), 0o600))

	cfg, err := loadConfig([]string{"--config", path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "bounce-out", cfg.Ease)
	assert.Equal(t, 30, cfg.Width)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, io.Discard)
	require.Error(t, err)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero samples", []string{"--samples", "0"}},
		{"tiny plot", []string{"--width", "1"}},
		{"watch without presets", []string{"--watch", "--preset", "pop"}},
		{"unknown flag", []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.args, io.Discard)
			require.Error(t, err)
		})
	}
}
