// Package config provides configuration loading, defaults, and validation
// for the pubchem CLI.  Settings come from an optional YAML file merged with
// PUBCHEM_* environment variable overrides.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/turtacn/pubchem-go/internal/logging"
)

// APIConfig holds PUG REST client tunables.
type APIConfig struct {
	// BaseURL is the PUG REST endpoint.
	BaseURL string `mapstructure:"base_url"`

	// ViewURL is the PUG View endpoint used for safety data.
	ViewURL string `mapstructure:"view_url"`

	// Timeout bounds each individual HTTP request.
	Timeout time.Duration `mapstructure:"timeout"`

	// PollInterval is the delay between listkey polls for asynchronous
	// structure and formula searches.
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// PollMaxAttempts bounds the number of listkey polls; zero polls until
	// the server resolves the job.
	PollMaxAttempts int `mapstructure:"poll_max_attempts"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `mapstructure:"user_agent"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	// Format is "json" or "text".
	Format string `mapstructure:"format"`

	// Pretty indents JSON output.
	Pretty bool `mapstructure:"pretty"`
}

// Config is the root configuration for the pubchem CLI.
type Config struct {
	API    APIConfig         `mapstructure:"api"`
	Log    logging.LogConfig `mapstructure:"log"`
	Output OutputConfig      `mapstructure:"output"`
}

// Validate checks the configuration for values that would break the client
// at runtime.  It assumes ApplyDefaults has already run.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{"api.base_url": c.API.BaseURL, "api.view_url": c.API.ViewURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: invalid URL %q: %w", name, raw, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: scheme must be http or https, got %q", name, raw)
		}
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.PollInterval <= 0 {
		return fmt.Errorf("api.poll_interval must be positive, got %s", c.API.PollInterval)
	}
	if c.API.PollMaxAttempts < 0 {
		return fmt.Errorf("api.poll_max_attempts must not be negative, got %d", c.API.PollMaxAttempts)
	}
	if c.Output.Format != "json" && c.Output.Format != "text" {
		return fmt.Errorf("output.format must be json or text, got %q", c.Output.Format)
	}
	return nil
}
