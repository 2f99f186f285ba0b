package agent

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/agenticseek/seekctl/internal/telemetry/logger"
)

// DefaultBaseURL is the address the backend listens on out of the box.
const DefaultBaseURL = "http://localhost:7777"

const defaultUserAgent = "seekctl/1.0"

// Client issues requests against the AgenticSeek HTTP API. It is created
// once per process and holds a reusable http.Client. Request deadlines come
// from the caller's context; the underlying http.Client sets no timeout of
// its own because /query may legitimately block for minutes.
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
	log       logger.Logger
	progress  func(read, total int64)
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTLSConfig sets the TLS configuration used for https URLs.
func WithTLSConfig(tlsCfg *tls.Config) Option {
	return func(c *Client) {
		c.client.Transport = &http.Transport{TLSClientConfig: tlsCfg}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithProgress sets a callback invoked as screenshot bytes arrive.
// total is -1 when the server does not advertise a Content-Length.
func WithProgress(f func(read, total int64)) Option {
	return func(c *Client) {
		c.progress = f
	}
}

// New creates a Client for the given base URL. An empty baseURL falls back
// to DefaultBaseURL; a missing scheme defaults to http:// and any trailing
// slash is stripped.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	c := &Client{
		baseURL:   baseURL,
		client:    &http.Client{},
		userAgent: defaultUserAgent,
		log:       logger.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the normalized base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health checks service liveness via GET /health.
func (c *Client) Health(ctx context.Context) Envelope {
	return c.getJSON(ctx, "/health")
}

// Status reports whether the agent is currently working via GET /is_active.
func (c *Client) Status(ctx context.Context) Envelope {
	return c.getJSON(ctx, "/is_active")
}

// Stop asks the agent to abort its current work via GET /stop.
func (c *Client) Stop(ctx context.Context) Envelope {
	return c.getJSON(ctx, "/stop")
}

// LatestAnswer fetches the most recent answer via GET /latest_answer.
func (c *Client) LatestAnswer(ctx context.Context) Envelope {
	return c.getJSON(ctx, "/latest_answer")
}

// Query submits a query via POST /query and blocks until the service
// responds or ctx expires. The body is {"query": text}.
func (c *Client) Query(ctx context.Context, text string) Envelope {
	body, err := json.Marshal(map[string]string{"query": text})
	if err != nil {
		return Envelope{Err: &RequestError{Message: fmt.Sprintf("marshal body: %v", err)}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return Envelope{Err: &RequestError{Message: fmt.Sprintf("create request: %v", err)}}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Screenshot fetches the current screenshot via GET /screenshot and returns
// the raw bytes. When savePath is non-empty the bytes are also written to
// that file.
func (c *Client) Screenshot(ctx context.Context, savePath string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/screenshot", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("screenshot request returned status %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if c.progress != nil {
		body = &progressReader{r: resp.Body, total: resp.ContentLength, report: c.progress}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if savePath != "" {
		if err := os.WriteFile(savePath, data, 0o644); err != nil {
			return nil, fmt.Errorf("write screenshot: %w", err)
		}
	}

	return data, nil
}

// getJSON performs a GET request and normalizes the result into an Envelope.
func (c *Client) getJSON(ctx context.Context, path string) Envelope {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return Envelope{Err: &RequestError{Message: fmt.Sprintf("create request: %v", err)}}
	}
	return c.do(req)
}

// do executes the request and converts every failure mode into an error
// envelope. Transport failures keep StatusCode zero; error statuses record
// the code the server returned.
func (c *Client) do(req *http.Request) Envelope {
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return Envelope{Err: &RequestError{Message: err.Error()}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug("request rejected", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)
		return Envelope{Err: &RequestError{
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}}
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Envelope{Err: &RequestError{Message: fmt.Sprintf("decode response: %v", err)}}
	}

	c.log.Debug("request complete",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)
	return Envelope{Body: body}
}

// progressReader reports read progress to a callback.
type progressReader struct {
	r      io.Reader
	read   int64
	total  int64
	report func(read, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report(p.read, p.total)
	}
	return n, err
}
