package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pubchem-go/pkg/pug"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, pug.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, pug.DefaultViewURL, cfg.API.ViewURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, pug.DefaultPollInterval, cfg.API.PollInterval)
	assert.Zero(t, cfg.API.PollMaxAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfigFile(t, `
api:
  base_url: https://pubchem.example.org/rest/pug
  poll_interval: 500ms
  poll_max_attempts: 10
log:
  level: debug
output:
  format: text
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://pubchem.example.org/rest/pug", cfg.API.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.API.PollInterval)
	assert.Equal(t, 10, cfg.API.PollMaxAttempts)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output.Format)
	// Unset fields still get defaults.
	assert.Equal(t, pug.DefaultViewURL, cfg.API.ViewURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad scheme", "api:\n  base_url: ftp://example.org\n"},
		{"negative poll cap", "api:\n  poll_max_attempts: -1\n"},
		{"bad output format", "output:\n  format: yaml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestValidate_Directly(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	require.NoError(t, cfg.Validate())

	cfg.API.PollInterval = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestWatch_InvokesCallbackOnChange(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: info\n")

	changed := make(chan *Config, 1)
	Watch(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})

	// Give the watcher a moment to register before rewriting.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	select {
	case cfg := <-changed:
		assert.Equal(t, "debug", cfg.Log.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config change callback not invoked")
	}
}
