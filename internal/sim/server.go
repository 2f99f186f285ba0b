// Package sim implements a stand-in for the AgenticSeek backend.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Server wires the agent, screenshot store, metrics and middleware
// chain into an http.Server.
type Server struct {
	cfg        *Config
	httpServer *http.Server
	handler    http.Handler
	agent      *Agent
	shots      *ScreenshotStore
	metrics    *Metrics
	logger     *slog.Logger
}

// New creates a simulator server from the configuration.
func New(cfg *Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	metrics := NewMetrics()
	agent := NewAgent(cfg.ThinkTime, cfg.HistoryLimit, logger)

	shots := NewScreenshotStore(logger)
	if cfg.ScreenshotDir != "" {
		if err := shots.Watch(cfg.ScreenshotDir); err != nil {
			return nil, fmt.Errorf("watch screenshot dir: %w", err)
		}
	}

	handler := Chain(
		NewHandler(agent, shots, metrics, cfg.Version, logger),
		Recover(logger),
		RequestID(),
		RateLimit(cfg.RateLimit),
		Instrument(metrics),
		Audit(logger),
	)

	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		},
		handler: handler,
		agent:   agent,
		shots:   shots,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Handler returns the fully wired HTTP handler.
// Tests mount it on an httptest server instead of a real listener.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and stops the screenshot
// watch.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if cerr := s.shots.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
