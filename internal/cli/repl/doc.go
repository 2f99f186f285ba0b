// Package repl provides the interactive shell mode for seekctl.
//
// This package implements the Read-Eval-Print Loop for interactive sessions:
//
//   - repl.go: Main loop and command dispatch
//   - completer.go: Prefix completion over the command set
//   - history.go: Bounded in-memory history persisted to ~/.seekctl/history
//
// The shell dispatches to the same API client as single-command mode, so
// responses render through the shared printer.
package repl
