package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Equal(t, 50, DefaultConfig().Size)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"size": 20, "interactive": true, "frame_rate": 50000000}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, config.Size)
	assert.True(t, config.Interactive)
	assert.Equal(t, 50*time.Millisecond, config.FrameRate)
	assert.Equal(t, DefaultConfig().RandomDensity, config.RandomDensity)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json"), "failed to read file"},
		{"bad json", writeConfig(t, `{"size":`), "failed to unmarshal data"},
		{"invalid values", writeConfig(t, `{"size": 0}`), "size must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, DefaultConfig().FrameRate, config.FrameRate)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative threshold", func(c *Config) { c.StagnationThreshold = -1 }},
		{"zero age span", func(c *Config) { c.AgeSpan = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			assert.Error(t, config.Validate())
		})
	}
}
