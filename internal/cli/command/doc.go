// Package command provides CLI command definitions for seekctl.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root application, global flags, settings resolution
//   - system.go: health, status and stop commands
//   - query.go: query, wait and history commands
//   - screenshot.go: screenshot download command
//   - demo.go: scripted demo and quicktest commands
//   - repl.go: interactive shell command
//
// Commands follow a consistent pattern of resolving settings, calling one
// client operation, and printing the result as indented JSON.
package command
