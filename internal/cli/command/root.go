// Package command provides CLI command definitions for seekctl.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive REPL mode.
package command

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/agenticseek/seekctl/internal/agent"
	"github.com/agenticseek/seekctl/internal/cli/config"
	"github.com/agenticseek/seekctl/internal/cli/output"
	"github.com/agenticseek/seekctl/internal/infra/buildinfo"
	"github.com/agenticseek/seekctl/internal/infra/tlsroots"
	"github.com/agenticseek/seekctl/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "seekctl",
		Usage:   "AgenticSeek API test client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			DemoCommand(),
			HealthCommand(),
			QueryCommand(),
			StatusCommand(),
			ScreenshotCommand(),
			StopCommand(),
			HistoryCommand(),
			WaitCommand(),
			QuicktestCommand(),
			REPLCommand(),
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			c.App.Metadata["config"] = cfg

			if c.Bool("verbose") || cfg.Verbose {
				logger.SetLevel("debug")
			}

			caFile := cfg.CAFile
			if c.IsSet("ca-file") {
				caFile = c.String("ca-file")
			}
			if caFile != "" {
				tlsCfg, err := loadTLSConfig(caFile)
				if err != nil {
					return err
				}
				c.App.Metadata["tls"] = tlsCfg
			}
			return nil
		},
		// Running seekctl without a command starts the demo, matching the
		// reference client.
		Action: rootAction,
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "Base URL of the AgenticSeek API",
			EnvVars: []string{"AGENTIC_SEEK_URL"},
			Value:   agent.DefaultBaseURL,
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "Bound on how long a command may block",
			Value:   300 * time.Second,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the config file (default ~/.seekctl/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "ca-file",
			Usage: "PEM bundle of extra CA roots trusted for https URLs",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

func rootAction(c *cli.Context) error {
	if c.Args().Present() {
		return cli.Exit(fmt.Sprintf("unknown command %q, see --help", c.Args().First()), 1)
	}
	return demoAction(c)
}

// Settings are the options for one invocation, resolved in order: command
// line, environment, config file, defaults.
type Settings struct {
	URL      string
	Timeout  time.Duration
	Interval time.Duration
	Verbose  bool
}

// ParseSettings resolves the effective settings from the context and the
// loaded config file.
func ParseSettings(c *cli.Context) *Settings {
	cfg, ok := c.App.Metadata["config"].(*config.CLIConfig)
	if !ok || cfg == nil {
		cfg = config.Default()
	}

	s := &Settings{
		URL:      cfg.URL,
		Timeout:  cfg.Timeout,
		Interval: cfg.Interval,
		Verbose:  cfg.Verbose,
	}
	if c.IsSet("url") {
		s.URL = c.String("url")
	}
	if c.IsSet("timeout") {
		s.Timeout = c.Duration("timeout")
	}
	if c.IsSet("interval") {
		s.Interval = c.Duration("interval")
	}
	if c.Bool("verbose") {
		s.Verbose = true
	}
	return s
}

// NewClient builds the API client for this invocation.
func NewClient(c *cli.Context) *agent.Client {
	return agent.New(ParseSettings(c).URL, tlsOptions(c)...)
}

// loadTLSConfig builds a TLS config trusting the system roots plus the
// certificates in caFile.
func loadTLSConfig(caFile string) (*tls.Config, error) {
	pool, err := tlsroots.NewPool()
	if err != nil {
		return nil, err
	}
	if err := pool.AddCertFile(caFile); err != nil {
		return nil, err
	}
	return pool.TLSConfig(), nil
}

// tlsOptions returns the agent options for the TLS config resolved by the
// Before hook, if any.
func tlsOptions(c *cli.Context) []agent.Option {
	if tlsCfg, ok := c.App.Metadata["tls"].(*tls.Config); ok {
		return []agent.Option{agent.WithTLSConfig(tlsCfg)}
	}
	return nil
}

// requestContext returns a context bounded by the invocation timeout.
func requestContext(c *cli.Context) (context.Context, context.CancelFunc) {
	timeout := ParseSettings(c).Timeout
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// printer returns a response printer bound to the app writer.
func printer(c *cli.Context) *output.Printer {
	return output.NewPrinter(c.App.Writer)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
