// Package sim implements a single-process stand-in for the AgenticSeek
// backend, so demos, the REPL and integration-style tests can run
// without the real service.
//
// It serves the HTTP surface the seekctl client talks to:
//
//   - GET  /health: service health and version
//   - GET  /is_active: whether the agent is processing a query
//   - POST /query: run a query against the simulated agent
//   - GET  /latest_answer: the most recent answer
//   - GET  /stop: interrupt the current query
//   - GET  /screenshot: the latest screenshot as PNG bytes
//   - GET  /metrics: Prometheus metrics
//
// Features:
//
//   - One simulated agent with configurable think time and interruption
//   - Screenshot directory watching with duplicate suppression
//   - Middleware chain: Recover, RequestID, RateLimit, Instrument, Audit
//   - Graceful shutdown
package sim
