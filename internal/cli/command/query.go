// Package command provides CLI command definitions for seekctl.
package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/agenticseek/seekctl/internal/agent"
	"github.com/agenticseek/seekctl/internal/cli/output"
)

// QueryCommand returns the query command.
func QueryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Send a query to the agents",
		ArgsUsage: "<text...>",
		Action:    queryAction,
	}
}

// HistoryCommand returns the history command.
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:   "history",
		Usage:  "Get the latest query response",
		Action: historyAction,
	}
}

// WaitCommand returns the wait command.
func WaitCommand() *cli.Command {
	return &cli.Command{
		Name:  "wait",
		Usage: "Wait for the current query to complete and print the answer",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Delay between status checks",
				Value:   agent.DefaultPollInterval,
			},
		},
		Action: waitAction,
	}
}

func queryAction(c *cli.Context) error {
	if !c.Args().Present() {
		fmt.Fprintln(c.App.Writer, "Error: Query requires text argument")
		fmt.Fprintln(c.App.Writer, "Usage: seekctl query <text>")
		return cli.Exit("", 1)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	text := strings.Join(c.Args().Slice(), " ")
	return printer(c).Response("Response", NewClient(c).Query(ctx, text))
}

func historyAction(c *cli.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	return printer(c).Response("Response", NewClient(c).LatestAnswer(ctx))
}

func waitAction(c *cli.Context) error {
	s := ParseSettings(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	var spin *output.Spinner
	if isTerminal(c.App.Writer) {
		spin = output.NewSpinner(c.App.Writer, "Waiting for the agent to finish...")
		spin.Start()
	}

	result, err := NewClient(c).WaitForCompletion(ctx, s.Interval)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		fmt.Fprintf(c.App.Writer, "Timed out after %s waiting for completion\n", s.Timeout)
		return cli.Exit("", 1)
	}

	return printer(c).Response("Response", result)
}
