// Package main provides the entry point for seekctl.
//
// seekctl is the command-line test client for the AgenticSeek API,
// supporting both single-command mode and interactive REPL mode.
package main

import (
	"os"

	"github.com/agenticseek/seekctl/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		// Exit-coded errors have already been handled by the app.
		command.PrintError("%v", err)
		os.Exit(1)
	}
}
