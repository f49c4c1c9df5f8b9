package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, dir, env, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "properties"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "properties", env+".properties"), []byte(content), 0o644))
}

func TestReadPropertiesMissingFileUsesDefaults(t *testing.T) {
	c, err := ReadProperties(t.TempDir(), "nowhere")

	require.NoError(t, err)
	want := Default()
	want.Env = "nowhere"
	assert.Equal(t, want, c)
}

func TestReadPropertiesFromFile(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "test", `
BACKEND = Window
FPS = 30
SOUND_ENABLED = false
SOUND_VOLUME = 0.25
SAMPLE_RATE = 48000
KEY_HOLD_MS = 90
WINDOW_SCALE = 1.5
`)

	c, err := ReadProperties(dir, "test")

	require.NoError(t, err)
	assert.Equal(t, BackendWindow, c.Backend)
	assert.Equal(t, 30, c.FPS)
	assert.False(t, c.SoundEnabled)
	assert.Equal(t, 0.25, c.SoundVolume)
	assert.Equal(t, 48000, c.SampleRate)
	assert.Equal(t, 90, c.KeyHoldMs)
	assert.Equal(t, 1.5, c.WindowScale)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "test", "BACKEND = terminal\nFPS = 30\n")
	t.Setenv("PONG_BACKEND", "window")

	c, err := ReadProperties(dir, "test")

	require.NoError(t, err)
	assert.Equal(t, BackendWindow, c.Backend)
	assert.Equal(t, 30, c.FPS)
}

func TestReadPropertiesRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "BACKEND = vga\n"},
		{"zero fps", "FPS = 0\n"},
		{"negative scale", "WINDOW_SCALE = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProperties(t, dir, "bad", tt.content)

			_, err := ReadProperties(dir, "bad")

			assert.Error(t, err)
		})
	}
}

func TestLoadUsesPongEnv(t *testing.T) {
	t.Setenv("PONG_ENV", "")
	t.Setenv("PONG_FPS", "45")

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "local", c.Env)
	assert.Equal(t, 45, c.FPS)
}
