// Package logger builds the structured loggers used by seekctl and seeksim.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Logger is the leveled logger handed to components that should not
// depend on a concrete handler.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config selects the handler built by New and NewSlog.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	// Empty means info.
	Level string
	// Format is json, text or console. Empty means json.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// level is shared by every handler built here, so SetLevel takes effect
// everywhere at once.
var level = new(slog.LevelVar)

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a Logger from cfg, rejecting unknown levels and formats.
func New(cfg Config) (Logger, error) {
	if _, err := parseLevel(cfg.Level); err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.Format) {
	case "", "json", "text", "console":
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return &wrapper{log: NewSlog(cfg)}, nil
}

// NewSlog builds a *slog.Logger from cfg for components that take the
// standard library type directly. Unknown levels fall back to info.
func NewSlog(cfg Config) *slog.Logger {
	lvl, _ := parseLevel(cfg.Level)
	level.Set(lvl)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewJSONHandler(output, opts)
	}

	return slog.New(handler)
}

// SetLevel adjusts the shared level at runtime, as the --verbose flag
// does. Unknown levels leave the current level in place.
func SetLevel(s string) {
	if lvl, err := parseLevel(s); err == nil {
		level.Set(lvl)
	}
}

type wrapper struct {
	log *slog.Logger
}

func (w *wrapper) Debug(msg string, args ...any) { w.log.Debug(msg, args...) }
func (w *wrapper) Info(msg string, args ...any)  { w.log.Info(msg, args...) }
func (w *wrapper) Warn(msg string, args ...any)  { w.log.Warn(msg, args...) }
func (w *wrapper) Error(msg string, args ...any) { w.log.Error(msg, args...) }

func (w *wrapper) With(args ...any) Logger {
	return &wrapper{log: w.log.With(args...)}
}

var (
	defaultMu sync.RWMutex

	defaultLogger Logger = &wrapper{log: NewSlog(Config{})}
)

// SetDefault replaces the process-wide logger. A nil argument is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the process-wide logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}
