package config

import (
	"time"

	"github.com/turtacn/pubchem-go/pkg/pug"
)

// ApplyDefaults fills every unset field of cfg with its default value.
func ApplyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = pug.DefaultBaseURL
	}
	if cfg.API.ViewURL == "" {
		cfg.API.ViewURL = pug.DefaultViewURL
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.API.PollInterval == 0 {
		cfg.API.PollInterval = pug.DefaultPollInterval
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
}
