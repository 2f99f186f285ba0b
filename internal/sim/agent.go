// Package sim implements a stand-in for the AgenticSeek backend.
package sim

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Agent names assigned by query routing, mirroring the upstream router.
const (
	AgentCasual  = "Casual"
	AgentBrowser = "Browser"
	AgentCoder   = "Coder"
)

// ErrAgentBusy is returned by Submit while another query is in flight.
var ErrAgentBusy = errors.New("agent is busy")

// Answer is the JSON shape served by POST /query and GET /latest_answer.
// Field names and the string-typed done/success flags follow the backend
// response model the seekctl client was written against.
type Answer struct {
	Done      string         `json:"done"`
	Answer    string         `json:"answer"`
	Reasoning string         `json:"reasoning"`
	AgentName string         `json:"agent_name"`
	Success   string         `json:"success"`
	Blocks    map[string]any `json:"blocks"`
	Status    string         `json:"status"`
	UID       string         `json:"uid"`
}

// Agent is the single simulated agent behind the query endpoints.
//
// One query runs at a time: Submit marks the agent active, waits out the
// configured think time, then records and returns a synthesized answer.
// Stop interrupts the wait and the answer is recorded as unsuccessful.
type Agent struct {
	thinkTime    time.Duration
	historyLimit int
	logger       *slog.Logger

	mu        sync.Mutex
	active    bool
	interrupt chan struct{}
	latest    *Answer
	history   []*Answer
}

// NewAgent creates a new simulated agent.
func NewAgent(thinkTime time.Duration, historyLimit int, logger *slog.Logger) *Agent {
	if historyLimit < 1 {
		historyLimit = DefaultHistoryLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{
		thinkTime:    thinkTime,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Active reports whether a query is currently being processed.
func (a *Agent) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Submit runs a query to completion and returns the recorded answer.
//
// It blocks for the think time unless interrupted by Stop or by ctx.
// Interrupted runs still record an answer, with success "false" and a
// note in the answer text. A second Submit while one is in flight
// returns ErrAgentBusy without touching the agent state.
func (a *Agent) Submit(ctx context.Context, query string) (*Answer, error) {
	a.mu.Lock()
	if a.active {
		a.mu.Unlock()
		return nil, ErrAgentBusy
	}
	a.active = true
	interrupt := make(chan struct{})
	a.interrupt = interrupt
	a.mu.Unlock()

	name := routeAgent(query)
	a.logger.Debug("query accepted",
		"agent_name", name,
		"think_time", a.thinkTime,
	)

	timer := time.NewTimer(a.thinkTime)
	defer timer.Stop()

	interrupted := false
	select {
	case <-timer.C:
	case <-interrupt:
		interrupted = true
	case <-ctx.Done():
		interrupted = true
	}

	ans := composeAnswer(query, name, !interrupted)
	a.finish(ans)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ans, nil
}

// Stop interrupts the in-flight query, if any.
// It returns true when a query was actually interrupted.
func (a *Agent) Stop() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active || a.interrupt == nil {
		return false
	}
	close(a.interrupt)
	// Cleared so a second Stop does not close the channel again.
	a.interrupt = nil
	return true
}

// LatestAnswer returns the most recent answer.
// The second return is false before the first query completes.
func (a *Agent) LatestAnswer() (*Answer, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.latest == nil {
		return nil, false
	}
	return a.latest, true
}

// History returns recorded answers, oldest first, bounded by the
// configured history limit.
func (a *Agent) History() []*Answer {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*Answer, len(a.history))
	copy(out, a.history)
	return out
}

// finish records the answer and returns the agent to idle.
func (a *Agent) finish(ans *Answer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = false
	a.interrupt = nil
	a.latest = ans
	a.history = append(a.history, ans)
	if len(a.history) > a.historyLimit {
		a.history = a.history[len(a.history)-a.historyLimit:]
	}
}

// composeAnswer synthesizes the answer for a finished or interrupted run.
func composeAnswer(query, name string, completed bool) *Answer {
	ans := &Answer{
		Done:      "true",
		AgentName: name,
		Success:   "true",
		Blocks:    map[string]any{},
		Status:    "completed",
		UID:       newUID(),
	}

	if !completed {
		ans.Success = "false"
		ans.Status = "interrupted"
		ans.Answer = "Query was stopped before completion."
		ans.Reasoning = "The run was interrupted by a stop request."
		return ans
	}

	ans.Reasoning = fmt.Sprintf("Routed the query to the %s agent and simulated a run.", name)
	switch name {
	case AgentBrowser:
		ans.Answer = fmt.Sprintf("I browsed the web for %q and summarized the top results.", query)
	case AgentCoder:
		ans.Answer = fmt.Sprintf("I wrote and ran a short script for %q. The run finished without errors.", query)
	default:
		ans.Answer = fmt.Sprintf("Here is a quick take on %q. Ask a follow-up if you want more detail.", query)
	}
	return ans
}

// routeAgent picks an agent name from the query text, with Casual as
// the fallback.
func routeAgent(query string) string {
	q := strings.ToLower(query)
	for _, kw := range []string{"browse", "search", "web", "website", "online"} {
		if strings.Contains(q, kw) {
			return AgentBrowser
		}
	}
	for _, kw := range []string{"code", "script", "program", "compile", "debug"} {
		if strings.Contains(q, kw) {
			return AgentCoder
		}
	}
	return AgentCasual
}

// newUID generates a lowercase ULID for answers and request IDs.
func newUID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "uid-unknown"
	}
	return strings.ToLower(id.String())
}
