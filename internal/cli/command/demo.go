// Package command provides CLI command definitions for seekctl.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/agenticseek/seekctl/internal/cli/output"
)

// DemoCommand returns the demo command.
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "Run a scripted walkthrough of the API endpoints",
		Action: demoAction,
	}
}

// QuicktestCommand returns the quicktest command.
func QuicktestCommand() *cli.Command {
	return &cli.Command{
		Name:   "quicktest",
		Usage:  "Run a minimal connectivity test",
		Action: quicktestAction,
	}
}

func demoAction(c *cli.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	client := NewClient(c)
	w := c.App.Writer
	p := output.NewPrinter(w)

	p.Banner("AgenticSeek API Interactive Demo")
	fmt.Fprintln(w, "\nThis demo shows how to use the AgenticSeek API endpoints.")
	fmt.Fprintln(w, "Make sure the backend is running on port 7777.")
	fmt.Fprintln(w)

	// 1. Health Check
	fmt.Fprintln(w, "[1/5] Testing health endpoint...")
	health := client.Health(ctx)
	p.Response("Health Check", health)
	if !health.OK() {
		fmt.Fprintln(w, "\nError: Could not connect to the API. Make sure the backend is running.")
		return nil
	}

	// 2. Get Status
	fmt.Fprintln(w, "\n[2/5] Getting agent status...")
	p.Response("Agent Status", client.Status(ctx))

	// 3. Sample Query
	fmt.Fprintln(w, "\n[3/5] Sending a sample query...")
	sample := "Hello, how are you?"
	fmt.Fprintf(w, "Query: %s\n", sample)
	p.Response("Query Result", client.Query(ctx, sample))

	// 4. Get Latest Answer
	fmt.Fprintln(w, "\n[4/5] Getting latest answer...")
	p.Response("Latest Answer", client.LatestAnswer(ctx))

	// 5. Screenshot (if available)
	fmt.Fprintln(w, "\n[5/5] Checking for screenshot...")
	if data, err := client.Screenshot(ctx, ""); err == nil && len(data) > 0 {
		fmt.Fprintf(w, "Screenshot available (%d bytes)\n", len(data))
	} else {
		fmt.Fprintln(w, "No screenshot available")
	}

	p.Banner("Demo Complete!")
	fmt.Fprintln(w, "\nKey API Endpoints:")
	fmt.Fprintln(w, "  GET  /health           - Health check")
	fmt.Fprintln(w, "  GET  /is_active        - Check if agent is busy")
	fmt.Fprintln(w, "  GET  /stop             - Stop current operation")
	fmt.Fprintln(w, "  GET  /latest_answer    - Get last response")
	fmt.Fprintln(w, "  GET  /screenshot       - Download browser screenshot")
	fmt.Fprintln(w, "  POST /query            - Send query to agents")
	fmt.Fprintln(w)
	return nil
}

func quicktestAction(c *cli.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	client := NewClient(c)
	w := c.App.Writer

	fmt.Fprintln(w, "Running quick API test...")

	health := client.Health(ctx)
	if !health.OK() {
		fmt.Fprintf(w, "FAILED: Could not connect to API - %s\n", health.Err.Message)
		return cli.Exit("", 1)
	}

	fmt.Fprintf(w, "Health check: %s\n", health.StringField("status", "unknown"))
	fmt.Fprintf(w, "Version: %s\n", health.StringField("version", "unknown"))

	result := client.Query(ctx, "Say hello!")
	done := "unknown"
	if v, ok := result.Field("done"); ok {
		done = fmt.Sprintf("%v", v)
	}
	fmt.Fprintf(w, "Query completed: %s\n", done)

	answer := result.StringField("answer", "")
	if len(answer) > 100 {
		answer = answer[:100]
	}
	fmt.Fprintf(w, "Answer preview: %s...\n", answer)

	fmt.Fprintln(w, "\nQuick test PASSED!")
	return nil
}
