// Package command provides CLI command definitions for seekctl.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/agenticseek/seekctl/internal/agent"
	"github.com/agenticseek/seekctl/internal/cli/output"
)

// ScreenshotCommand returns the screenshot command.
func ScreenshotCommand() *cli.Command {
	return &cli.Command{
		Name:      "screenshot",
		Usage:     "Download the latest browser screenshot",
		ArgsUsage: "[path]",
		Action:    screenshotAction,
	}
}

func screenshotAction(c *cli.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	s := ParseSettings(c)
	path := c.Args().First()

	opts := tlsOptions(c)
	var started bool
	if isTerminal(c.App.Writer) {
		bar := output.NewProgressBar(c.App.Writer, "Downloading")
		opts = append(opts, agent.WithProgress(func(read, total int64) {
			started = true
			bar.Update(read, total)
		}))
	}

	client := agent.New(s.URL, opts...)
	data, err := client.Screenshot(ctx, path)
	if started {
		// Move past the progress bar line before reporting.
		fmt.Fprintln(c.App.Writer)
	}
	if err != nil {
		fmt.Fprintf(c.App.Writer, "Failed to get screenshot: %v\n", err)
		return nil
	}

	if path != "" {
		fmt.Fprintf(c.App.Writer, "Screenshot saved to: %s\n", path)
	} else {
		fmt.Fprintf(c.App.Writer, "Screenshot available (%d bytes)\n", len(data))
	}
	return nil
}
