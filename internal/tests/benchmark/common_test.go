package benchmark

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/agenticseek/seekctl/internal/agent"
	"github.com/agenticseek/seekctl/internal/sim"
)

// discardSlog returns a logger that drops everything.
func discardSlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newBenchServer starts a simulator with no think time and an effectively
// unlimited request budget, plus a client pointed at it.
func newBenchServer(b *testing.B) (*httptest.Server, *agent.Client) {
	b.Helper()

	cfg := sim.DefaultConfig()
	cfg.ThinkTime = 0
	cfg.RateLimit = 1000000

	srv, err := sim.New(cfg, discardSlog())
	if err != nil {
		b.Fatalf("failed to create simulator: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	return ts, agent.New(ts.URL)
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}
