// Package repl provides the interactive shell mode for seekctl.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agenticseek/seekctl/internal/agent"
	"github.com/agenticseek/seekctl/internal/cli/output"
)

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	client    *agent.Client
	printer   *output.Printer
	completer *Completer
	history   *History
	timeout   time.Duration
}

// New creates a REPL bound to the given agent client. timeout bounds each
// dispatched command; zero means no limit.
func New(client *agent.Client, timeout time.Duration) *REPL {
	return &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		client:    client,
		printer:   output.NewPrinter(os.Stdout),
		completer: NewCompleter(),
		history:   NewHistory(),
		timeout:   timeout,
	}
}

// Run starts the REPL loop. History is loaded on entry and persisted on
// exit, best effort.
func (r *REPL) Run(ctx context.Context) error {
	_ = r.history.Load()
	defer func() { _ = r.history.Save() }()

	reader := bufio.NewReader(r.input)

	for {
		// Print prompt
		fmt.Fprint(r.output, "seekctl> ")

		// Read line
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		// Trim and skip empty lines
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Add to history
		r.history.Add(line)

		// Handle special commands
		if line == "exit" || line == "quit" {
			return nil
		}

		// Execute command
		if err := r.execute(ctx, line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

func (r *REPL) execute(ctx context.Context, line string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "health":
		r.printer.Response("Health Check", r.client.Health(ctx))
	case "status":
		r.printer.Response("Agent Status", r.client.Status(ctx))
	case "query":
		if len(args) == 0 {
			return fmt.Errorf("query requires text, e.g. query What time is it?")
		}
		r.printer.Response("Query Result", r.client.Query(ctx, strings.Join(args, " ")))
	case "screenshot":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		data, err := r.client.Screenshot(ctx, path)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(r.output, "Screenshot saved to: %s\n", path)
		} else {
			fmt.Fprintf(r.output, "Screenshot available (%d bytes)\n", len(data))
		}
	case "stop":
		r.printer.Response("Stop", r.client.Stop(ctx))
	case "history":
		r.printer.Response("Latest Answer", r.client.LatestAnswer(ctx))
	case "help":
		r.printHelp()
	default:
		if matches := r.completer.Complete(cmd); len(matches) > 0 {
			return fmt.Errorf("unknown command %q, did you mean %s?", cmd, strings.Join(matches, " or "))
		}
		return fmt.Errorf("unknown command %q, type help for a list", cmd)
	}
	return nil
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.output, "Commands:")
	fmt.Fprintln(r.output, "  health             Check if the API is running")
	fmt.Fprintln(r.output, "  status             Get agent status")
	fmt.Fprintln(r.output, "  query <text>       Send a query to the agents")
	fmt.Fprintln(r.output, "  screenshot [path]  Download the latest screenshot")
	fmt.Fprintln(r.output, "  stop               Stop the current agent operation")
	fmt.Fprintln(r.output, "  history            Get the latest answer")
	fmt.Fprintln(r.output, "  help               Show this help")
	fmt.Fprintln(r.output, "  exit               Leave the shell")
}
