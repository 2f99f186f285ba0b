// Package command provides CLI command definitions for seekctl.
package command

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/agenticseek/seekctl/internal/agent"
	"github.com/agenticseek/seekctl/internal/cli/repl"
)

// REPLCommand returns the interactive shell command.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Start an interactive shell",
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	s := ParseSettings(c)
	r := repl.New(agent.New(s.URL, tlsOptions(c)...), s.Timeout)
	return r.Run(context.Background())
}
