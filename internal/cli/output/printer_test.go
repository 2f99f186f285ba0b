package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Response(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	err := p.Response("Health Check", map[string]any{"status": "healthy"})
	if err != nil {
		t.Fatalf("Response failed: %v", err)
	}

	got := buf.String()
	rule := strings.Repeat("=", 60)

	if !strings.HasPrefix(got, "\n"+rule+"\n  Health Check\n"+rule+"\n") {
		t.Errorf("banner malformed:\n%s", got)
	}
	if !strings.Contains(got, "\"status\": \"healthy\"") {
		t.Errorf("output missing indented JSON:\n%s", got)
	}
}

func TestPrinter_JSON_Indentation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	data := map[string]any{"outer": map[string]any{"inner": "value"}}
	if err := p.JSON(data); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	// Nested keys are indented by two extra spaces per level.
	if !strings.Contains(buf.String(), "    \"inner\": \"value\"") {
		t.Errorf("nested indentation wrong:\n%s", buf.String())
	}
}

func TestPrinter_JSON_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if err := p.JSON(map[string]any{"answer": "a < b && c > d"}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	got := buf.String()
	if strings.Contains(got, "\\u003c") {
		t.Errorf("angle brackets should not be escaped:\n%s", got)
	}
	if !strings.Contains(got, "a < b && c > d") {
		t.Errorf("output should contain literal characters:\n%s", got)
	}
}

func TestPrinter_JSON_NonASCII(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if err := p.JSON(map[string]any{"answer": "四十二"}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	if !strings.Contains(buf.String(), "四十二") {
		t.Errorf("non-ASCII text should render as typed:\n%s", buf.String())
	}
}

func TestPrinter_Banner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Banner("Demo Complete!")

	lines := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("banner has %d lines, want 3", len(lines))
	}
	if len(lines[0]) != 60 || len(lines[2]) != 60 {
		t.Errorf("rule lines are %d and %d chars, want 60", len(lines[0]), len(lines[2]))
	}
	if lines[1] != "  Demo Complete!" {
		t.Errorf("title line = %q, want two-space indent", lines[1])
	}
}
