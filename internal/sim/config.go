// Package sim implements a stand-in for the AgenticSeek backend.
package sim

import (
	"errors"
	"os"
	"time"
)

// Default configuration values.
const (
	DefaultAddr         = "127.0.0.1:7777"
	DefaultVersion      = "0.1.0"
	DefaultThinkTime    = 750 * time.Millisecond
	DefaultHistoryLimit = 100
	DefaultRateLimit    = 50

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Config is the root configuration for seeksim.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `koanf:"addr"`

	// Version is reported by GET /health.
	Version string `koanf:"version"`

	// ThinkTime is how long the agent works on a query before answering.
	ThinkTime time.Duration `koanf:"think_time"`

	// ScreenshotDir, when set, is watched for new PNG files. The newest
	// one is served by GET /screenshot instead of the built-in placeholder.
	ScreenshotDir string `koanf:"screenshot_dir"`

	// HistoryLimit bounds how many answers the agent retains.
	HistoryLimit int `koanf:"history_limit"`

	// RateLimit is the per-IP request budget in requests per second.
	RateLimit int `koanf:"rate_limit"`

	Log LogConfig `koanf:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DefaultConfig returns the default simulator configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:         DefaultAddr,
		Version:      DefaultVersion,
		ThinkTime:    DefaultThinkTime,
		HistoryLimit: DefaultHistoryLimit,
		RateLimit:    DefaultRateLimit,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if cfg.Addr == "" {
		return errors.New("addr is required")
	}
	if cfg.ThinkTime < 0 {
		return errors.New("think_time must not be negative")
	}
	if cfg.HistoryLimit < 1 {
		return errors.New("history_limit must be at least 1")
	}
	if cfg.RateLimit < 1 {
		return errors.New("rate_limit must be at least 1")
	}
	if cfg.ScreenshotDir != "" {
		info, err := os.Stat(cfg.ScreenshotDir)
		if err != nil {
			return errors.New("screenshot_dir does not exist: " + err.Error())
		}
		if !info.IsDir() {
			return errors.New("screenshot_dir is not a directory")
		}
	}
	return nil
}
