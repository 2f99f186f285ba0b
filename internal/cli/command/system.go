// Package command provides CLI command definitions for seekctl.
package command

import (
	"github.com/urfave/cli/v2"
)

// HealthCommand returns the health command.
func HealthCommand() *cli.Command {
	return &cli.Command{
		Name:   "health",
		Usage:  "Check if the API is running",
		Action: healthAction,
	}
}

// StatusCommand returns the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Get agent status",
		Action: statusAction,
	}
}

// StopCommand returns the stop command.
func StopCommand() *cli.Command {
	return &cli.Command{
		Name:   "stop",
		Usage:  "Stop the current agent operation",
		Action: stopAction,
	}
}

func healthAction(c *cli.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	return printer(c).Response("Response", NewClient(c).Health(ctx))
}

func statusAction(c *cli.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	return printer(c).Response("Response", NewClient(c).Status(ctx))
}

func stopAction(c *cli.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	return printer(c).Response("Response", NewClient(c).Stop(ctx))
}
