// Package agent provides the HTTP client for the AgenticSeek API.
//
// This package wraps the backend's REST endpoints:
//
//   - client.go: HTTP client and the endpoint operations
//   - envelope.go: uniform result type for API calls
//   - poll.go: poll-until-completion loop
//
// Every API operation returns an Envelope rather than a Go error: failures
// (connection refused, timeouts, non-2xx statuses) are converted into error
// envelopes at the client boundary so callers can print any result through
// the same path.
package agent
