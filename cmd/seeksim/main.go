// Package main provides the entry point for seeksim.
//
// seeksim is a local stand-in for the AgenticSeek backend. It serves
// the same HTTP API with a simulated agent, so seekctl can be exercised
// without running the real stack.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/agenticseek/seekctl/internal/infra/buildinfo"
	"github.com/agenticseek/seekctl/internal/infra/confloader"
	"github.com/agenticseek/seekctl/internal/infra/shutdown"
	"github.com/agenticseek/seekctl/internal/sim"
	"github.com/agenticseek/seekctl/internal/telemetry/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command line flags
	var (
		configFile    = flag.String("config", "", "Path to configuration file")
		addr          = flag.String("addr", "", "Listen address (overrides config)")
		thinkTime     = flag.Duration("think-time", 0, "Simulated processing time per query (overrides config)")
		screenshotDir = flag.String("screenshot-dir", "", "Directory to watch for screenshot files (overrides config)")
		showVersion   = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("seeksim %s\n", buildinfo.String())
		return nil
	}

	// Load configuration
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override file and environment settings. Validation runs in
	// sim.New so it sees the final values.
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *thinkTime > 0 {
		cfg.ThinkTime = *thinkTime
	}
	if *screenshotDir != "" {
		cfg.ScreenshotDir = *screenshotDir
	}

	// Initialize logger
	log, slogLogger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting seeksim",
		"version", buildinfo.Version,
		"addr", cfg.Addr,
		"config", *configFile)

	// Create the simulator server
	server, err := sim.New(cfg, slogLogger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	// Setup graceful shutdown
	notifier := shutdown.New(30 * time.Second)

	notifier.Register(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return server.Shutdown(ctx)
	})

	// Start HTTP server in goroutine
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	log.Info("simulator started, press Ctrl+C to stop")
	if err := notifier.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("simulator stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment. The simulator
// reads SEEKSIM_ variables so it never clashes with seekctl settings.
func loadConfig(configFile string) (*sim.Config, error) {
	// Start with defaults
	cfg := sim.DefaultConfig()

	// Create loader with optional config file
	opts := []confloader.Option{confloader.WithEnvPrefix("SEEKSIM_")}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)

	// Load and unmarshal
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// initLogger initializes the structured logger.
// Returns both the logger interface and slog.Logger for components that need it.
func initLogger(cfg *sim.Config) (logger.Logger, *slog.Logger, error) {
	logCfg := logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	}

	log, err := logger.New(logCfg)
	if err != nil {
		return nil, nil, err
	}

	// Set as default logger
	logger.SetDefault(log)

	// The sim package logs through slog directly, so give it a handler
	// built from the same configuration.
	slogLogger := logger.NewSlog(logCfg)
	slog.SetDefault(slogLogger)

	return log, slogLogger, nil
}
