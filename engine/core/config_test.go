package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/glrender/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glrender.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
title: demo
width: 800
vsync: false
clear_color: [0, 0, 0, 1]
log_level: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.False(t, cfg.VSync)
	assert.Equal(t, colors.Black, cfg.ClearColor)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, float32(60), cfg.FovDeg)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "width: [1, 2"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "height: 0"))
	assert.ErrorContains(t, err, "invalid window size")

	_, err = LoadConfig(writeConfig(t, "log_level: chatty"))
	assert.ErrorContains(t, err, "unknown log level")

	_, err = LoadConfig(writeConfig(t, "fov: 180"))
	assert.ErrorContains(t, err, "invalid fov")
}
