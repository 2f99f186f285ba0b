package command

import (
	"net/http"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestDemoCommand(t *testing.T) {
	cmd := DemoCommand()
	if cmd.Name != "demo" {
		t.Errorf("Name = %q, want %q", cmd.Name, "demo")
	}
	if cmd.Action == nil {
		t.Error("demo command should have an action")
	}
}

func TestQuicktestCommand(t *testing.T) {
	cmd := QuicktestCommand()
	if cmd.Name != "quicktest" {
		t.Errorf("Name = %q, want %q", cmd.Name, "quicktest")
	}
	if cmd.Action == nil {
		t.Error("quicktest command should have an action")
	}
}

func TestDemoAction_FullRun(t *testing.T) {
	server := newMockServer()
	defer server.Close()
	healthyBackend(server)

	ctx := testContext(server)
	if err := demoAction(ctx); err != nil {
		t.Fatalf("demoAction() error = %v", err)
	}

	got := capturedOutput(ctx)
	for _, want := range []string{
		"AgenticSeek API Interactive Demo",
		"[1/5] Testing health endpoint...",
		"[2/5] Getting agent status...",
		"[3/5] Sending a sample query...",
		"Query: Hello, how are you?",
		"[4/5] Getting latest answer...",
		"[5/5] Checking for screenshot...",
		"Screenshot available (8 bytes)",
		"Demo Complete!",
		"Key API Endpoints:",
		"POST /query            - Send query to agents",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("demo output missing %q, got:\n%s", want, got)
		}
	}
}

func TestDemoAction_AbortsWhenHealthFails(t *testing.T) {
	server := newMockServer()
	server.Close()

	ctx := testContext(server)
	if err := demoAction(ctx); err != nil {
		t.Fatalf("demoAction() error = %v", err)
	}

	got := capturedOutput(ctx)
	if !strings.Contains(got, "[1/5]") {
		t.Error("demo should attempt the health check")
	}
	if !strings.Contains(got, "Error: Could not connect to the API. Make sure the backend is running.") {
		t.Errorf("demo should report the connection failure, got:\n%s", got)
	}
	if strings.Contains(got, "[2/5]") {
		t.Error("demo must stop after a failed health check")
	}
}

func TestDemoAction_NoScreenshot(t *testing.T) {
	server := newMockServer()
	defer server.Close()
	healthyBackend(server)
	server.handle("/screenshot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ctx := testContext(server)
	if err := demoAction(ctx); err != nil {
		t.Fatalf("demoAction() error = %v", err)
	}

	got := capturedOutput(ctx)
	if !strings.Contains(got, "No screenshot available") {
		t.Errorf("demo should report the missing screenshot, got:\n%s", got)
	}
	if !strings.Contains(got, "Demo Complete!") {
		t.Error("a missing screenshot must not abort the demo")
	}
}

func TestQuicktestAction_Pass(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	server.handle("/health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]any{"status": "healthy", "version": "1.2.3"})
	})
	server.handle("/query", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]any{"answer": "hello there", "done": true})
	})

	ctx := testContext(server)
	if err := quicktestAction(ctx); err != nil {
		t.Fatalf("quicktestAction() error = %v", err)
	}

	got := capturedOutput(ctx)
	for _, want := range []string{
		"Running quick API test...",
		"Health check: healthy",
		"Version: 1.2.3",
		"Query completed: true",
		"Answer preview: hello there...",
		"Quick test PASSED!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("quicktest output missing %q, got:\n%s", want, got)
		}
	}
}

func TestQuicktestAction_Fail(t *testing.T) {
	server := newMockServer()
	server.Close()

	ctx := testContext(server)
	err := quicktestAction(ctx)

	exitErr, ok := err.(cli.ExitCoder)
	if !ok {
		t.Fatalf("expected an exit coder, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}

	if !strings.Contains(capturedOutput(ctx), "FAILED: Could not connect to API - ") {
		t.Errorf("output should report the failure, got:\n%s", capturedOutput(ctx))
	}
}
