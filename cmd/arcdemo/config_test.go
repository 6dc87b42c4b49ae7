package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcdemo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
size = 300
pages = 8
thumb_color = "#ff8800"
hide_delay_ms = 1500
audio = false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Size)
	assert.Equal(t, 8, cfg.Pages)
	assert.Equal(t, "#ff8800", cfg.ThumbColor)
	assert.Equal(t, 1500, cfg.HideDelayMS)
	assert.False(t, cfg.Audio)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultConfig().StrokeWidth, cfg.StrokeWidth)
	assert.Equal(t, DefaultConfig().ExportPath, cfg.ExportPath)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `size = "not a number"`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero size", content: "size = 0"},
		{name: "zero pages", content: "pages = 0"},
		{name: "negative stroke", content: "stroke_width = -1.0"},
		{name: "negative padding", content: "padding = -2.0"},
		{name: "zero hide delay", content: "hide_delay_ms = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	assert.Len(t, cfg.Options(), 4)

	cfg.TrackColor = "#112233"
	cfg.ThumbColor = "#445566"
	assert.Len(t, cfg.Options(), 6)
}
