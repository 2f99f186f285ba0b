// Package config defines the CLI configuration structure.
package config

import (
	"time"

	"github.com/agenticseek/seekctl/internal/agent"
)

// CLIConfig is the configuration for seekctl.
type CLIConfig struct {
	// URL is the base URL of the AgenticSeek backend.
	URL string `koanf:"url"`

	// Timeout bounds query and wait operations.
	Timeout time.Duration `koanf:"timeout"`

	// Interval is the delay between status checks while waiting.
	Interval time.Duration `koanf:"interval"`

	// CAFile is a PEM bundle of extra CA roots trusted for https URLs.
	// Self-hosted backends behind a private CA need this.
	CAFile string `koanf:"ca_file"`

	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		URL:      agent.DefaultBaseURL,
		Timeout:  300 * time.Second,
		Interval: agent.DefaultPollInterval,
	}
}
