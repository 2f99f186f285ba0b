// Package sim implements a stand-in for the AgenticSeek backend.
package sim

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// QueryRequest is the request body for POST /query.
type QueryRequest struct {
	Query string `json:"query"`
}

// Handler routes requests to the simulator endpoints.
type Handler struct {
	agent   *Agent
	shots   *ScreenshotStore
	metrics *Metrics
	version string
	logger  *slog.Logger
	mux     *http.ServeMux
}

// NewHandler creates the handler for all simulator endpoints.
func NewHandler(agent *Agent, shots *ScreenshotStore, metrics *Metrics, version string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		agent:   agent,
		shots:   shots,
		metrics: metrics,
		version: version,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /is_active", h.handleIsActive)
	h.mux.HandleFunc("GET /stop", h.handleStop)
	h.mux.HandleFunc("GET /latest_answer", h.handleLatestAnswer)
	h.mux.HandleFunc("POST /query", h.handleQuery)
	h.mux.HandleFunc("GET /screenshot", h.handleScreenshot)
	h.mux.Handle("GET /metrics", h.metrics.Handler())
}

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

// handleIsActive handles GET /is_active.
func (h *Handler) handleIsActive(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]bool{
		"is_active": h.agent.Active(),
	})
}

// handleStop handles GET /stop.
func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	if h.agent.Stop() {
		h.logger.Info("query interrupted by stop request",
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "stopped",
	})
}

// handleLatestAnswer handles GET /latest_answer.
func (h *Handler) handleLatestAnswer(w http.ResponseWriter, r *http.Request) {
	ans, ok := h.agent.LatestAnswer()
	if !ok {
		h.writeError(w, http.StatusNotFound, "no answer available")
		return
	}
	h.writeJSON(w, http.StatusOK, ans)
}

// handleQuery handles POST /query.
//
// The request blocks until the agent finishes or is interrupted, which
// is how the real backend behaves and what the client's polling mode
// depends on.
func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.writeError(w, http.StatusBadRequest, "query cannot be empty")
		return
	}

	h.metrics.AgentBusy.Set(1)
	ans, err := h.agent.Submit(r.Context(), req.Query)
	if errors.Is(err, ErrAgentBusy) {
		// The in-flight query's handler still owns the busy gauge.
		h.writeError(w, http.StatusTooManyRequests, "agent is busy")
		return
	}

	h.metrics.AgentBusy.Set(0)
	h.metrics.QueriesTotal.Inc()

	if err != nil {
		// Client went away mid-run; the answer is still recorded.
		h.logger.Debug("query abandoned",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		return
	}
	h.writeJSON(w, http.StatusOK, ans)
}

// handleScreenshot handles GET /screenshot.
func (h *Handler) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	data, ok := h.shots.Latest()
	if !ok {
		h.writeError(w, http.StatusNotFound, "no screenshot available")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write screenshot", "error", err)
	}
}

// writeJSON writes a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes the backend's error shape, a JSON object with a
// single error key.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
