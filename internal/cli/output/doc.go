// Package output provides output formatting for seekctl.
//
// This package handles all CLI output:
//
//   - printer.go: Response banners and indented JSON rendering
//   - spinner.go: Progress animation for long operations
//   - progress.go: Progress bar for screenshot downloads
//
// Every API response is printed through the same JSON path, so error
// envelopes and successful bodies render identically in structure.
package output
